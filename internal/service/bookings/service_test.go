package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/internal/domain"
	bookingRepo "github.com/avdnk/DocBooking/internal/infra/storage/booking"
	"github.com/avdnk/DocBooking/pkg/metrics"
)

type fakeRepo struct {
	byID      map[int64]*domain.Booking
	byCode    map[string]*domain.Booking
	cancelled []int64
	cancelErr error
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{
		byID:   make(map[int64]*domain.Booking),
		byCode: make(map[string]*domain.Booking),
	}
	for _, b := range bookings {
		r.byID[b.ID] = b
		r.byCode[b.Code] = b
	}
	return r
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	b, ok := f.byCode[code]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeNotifier struct {
	cancelled []*domain.Booking
}

func (f *fakeNotifier) BookingCancelled(booking *domain.Booking) {
	f.cancelled = append(f.cancelled, booking)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		Code:          "APT-20260901-ABCD",
		CustomerEmail: "Ivan@Example.com",
		BookingDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     "16:00",
		Status:        domain.StatusConfirmed,
	}
}

func TestLookup_ByCode(t *testing.T) {
	svc := NewService(newFakeRepo(confirmedBooking()), &fakeNotifier{}, nil, nopLogger{})

	booking, err := svc.Lookup(context.Background(), "APT-20260901-ABCD", "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
}

func TestLookup_ByNumericID(t *testing.T) {
	svc := NewService(newFakeRepo(confirmedBooking()), &fakeNotifier{}, nil, nopLogger{})

	booking, err := svc.Lookup(context.Background(), "42", "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "APT-20260901-ABCD", booking.Code)
}

func TestLookup_EmailCaseInsensitive(t *testing.T) {
	svc := NewService(newFakeRepo(confirmedBooking()), &fakeNotifier{}, nil, nopLogger{})

	_, err := svc.Lookup(context.Background(), "42", "IVAN@EXAMPLE.COM")
	assert.NoError(t, err)
}

func TestLookup_WrongEmailIndistinguishableFromMissing(t *testing.T) {
	// Чужой email и несуществующий код дают одну и ту же ошибку,
	// чтобы нельзя было перебором проверять существование записей
	svc := NewService(newFakeRepo(confirmedBooking()), &fakeNotifier{}, nil, nopLogger{})

	_, errWrongEmail := svc.Lookup(context.Background(), "APT-20260901-ABCD", "other@example.com")
	_, errMissing := svc.Lookup(context.Background(), "APT-00000000-XXXX", "ivan@example.com")

	assert.ErrorIs(t, errWrongEmail, ErrBookingNotFound)
	assert.ErrorIs(t, errMissing, ErrBookingNotFound)
	assert.Equal(t, errWrongEmail, errMissing)
}

func TestLookup_MissingArguments(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeNotifier{}, nil, nopLogger{})

	_, err := svc.Lookup(context.Background(), "", "ivan@example.com")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Lookup(context.Background(), "42", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeRepo(confirmedBooking())
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, nil, nopLogger{})

	booking, err := svc.Cancel(context.Background(), "APT-20260901-ABCD", "ivan@example.com")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, booking.Status)
	assert.NotNil(t, booking.CancelledAt)
	assert.Equal(t, []int64{42}, repo.cancelled)
	require.Len(t, notifier.cancelled, 1)
	assert.Equal(t, int64(42), notifier.cancelled[0].ID)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCancelled
	repo := newFakeRepo(b)
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, nil, nopLogger{})

	_, err := svc.Cancel(context.Background(), "42", "ivan@example.com")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, repo.cancelled)
	assert.Empty(t, notifier.cancelled)
}

func TestCancel_WrongEmail(t *testing.T) {
	repo := newFakeRepo(confirmedBooking())
	svc := NewService(repo, &fakeNotifier{}, nil, nopLogger{})

	_, err := svc.Cancel(context.Background(), "42", "other@example.com")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_IncrementsCounter(t *testing.T) {
	collector := metrics.New("bookings-cancel-test")
	svc := NewService(newFakeRepo(confirmedBooking()), &fakeNotifier{}, collector, nopLogger{})

	_, err := svc.Cancel(context.Background(), "APT-20260901-ABCD", "ivan@example.com")
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.BookingsCancelledTotal))
}
