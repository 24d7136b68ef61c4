package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/internal/domain"
	bookingRepo "github.com/avdnk/DocBooking/internal/infra/storage/booking"
	serviceStorage "github.com/avdnk/DocBooking/internal/infra/storage/service"
	"github.com/avdnk/DocBooking/internal/schedule"
	"github.com/avdnk/DocBooking/pkg/metrics"
	"github.com/avdnk/DocBooking/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeBlockRepo struct {
	blocks []*domain.BlockedRange
}

func (f *fakeBlockRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.BlockedRange, error) {
	return f.blocks, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeSchedule struct {
	window schedule.Window
	open   bool
}

func (f *fakeSchedule) WindowFor(_ time.Time) (schedule.Window, bool) {
	return f.window, f.open
}

// fakeTxManager выполняет колбэк без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	created []*domain.Booking
}

func (f *fakeNotifier) BookingCreated(booking *domain.Booking) {
	f.created = append(f.created, booking)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	blocks   *fakeBlockRepo
	notifier *fakeNotifier
	tx       *fakeTxManager
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{nextID: 42}
	blocks := &fakeBlockRepo{}
	notifier := &fakeNotifier{}
	tx := &fakeTxManager{}

	uc := NewUseCase(
		bookings,
		blocks,
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Консультация", DurationMinutes: 30}},
		&fakeSchedule{window: schedule.Window{Start: "16:00", End: "18:00"}, open: true},
		tx,
		notifier,
		"APT",
		nil,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	return &fixture{uc: uc, bookings: bookings, blocks: blocks, notifier: notifier, tx: tx}
}

func validRequest() *Request {
	return &Request{
		ServiceID:     1,
		Date:          testDate,
		StartTime:     "16:30",
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
		CustomerPhone: "+7 900 000-00-00",
	}
}

func ptrTS(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Консультация", resp.ServiceName)
	assert.Equal(t, 30, resp.ServiceDuration)
	assert.NotEmpty(t, resp.Code)
	assert.Contains(t, resp.Code, "APT-20260901-")
	assert.Len(t, resp.AccessToken, 32)

	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.notifier.created, 1)
	assert.Equal(t, int64(42), f.notifier.created[0].ID)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{{
		ID:              1,
		StartTime:       "16:30",
		ServiceDuration: 30,
		Status:          domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.notifier.created)
}

func TestExecute_OverlapWithLongerBooking(t *testing.T) {
	// Бронирование 16:00 на 60 минут перекрывает слот 16:30
	f := newFixture()
	f.bookings.existing = []*domain.Booking{{
		ID:              1,
		StartTime:       "16:00",
		ServiceDuration: 60,
		Status:          domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentBookingDoesNotConflict(t *testing.T) {
	// Бронирование 16:00-16:30 заканчивается ровно в начале слота
	f := newFixture()
	f.bookings.existing = []*domain.Booking{{
		ID:              1,
		StartTime:       "16:00",
		ServiceDuration: 30,
		Status:          domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_FullDayBlocked(t *testing.T) {
	f := newFixture()
	f.blocks.blocks = []*domain.BlockedRange{{ID: 1, Date: testDate}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayBlocked)
}

func TestExecute_PartialBlockCoversSlot(t *testing.T) {
	f := newFixture()
	f.blocks.blocks = []*domain.BlockedRange{{
		ID:        1,
		Date:      testDate,
		StartTime: ptrTS("16:30"),
		EndTime:   ptrTS("17:00"),
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_DayClosed(t *testing.T) {
	f := newFixture()
	f.uc.schedule = &fakeSchedule{open: false}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotOffGrid(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "16:15"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceDoesNotFitWindow(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "17:30"
	f.uc.serviceRepo = &fakeServiceRepo{
		service: &domain.Service{ID: 1, Name: "Процедура", DurationMinutes: 45},
	}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture()
	f.uc.serviceRepo = &fakeServiceRepo{err: serviceStorage.ErrServiceNotFound}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Гонка: конфликт пойман частичным уникальным индексом на вставке
	f := newFixture()
	f.bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.CustomerName = "  " }},
		{name: "missing email", mutate: func(r *Request) { r.CustomerEmail = "" }},
		{name: "bad email", mutate: func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{name: "missing phone", mutate: func(r *Request) { r.CustomerPhone = "" }},
		{name: "zero service", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SlotConflictIncrementsCounter(t *testing.T) {
	f := newFixture()
	f.uc.metrics = metrics.New("create-booking-conflict-test")
	f.bookings.existing = []*domain.Booking{{
		ID:              1,
		StartTime:       "16:30",
		ServiceDuration: 30,
		Status:          domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	assert.Equal(t, float64(1), testutil.ToFloat64(f.uc.metrics.BookingConflictsTotal))
	assert.Zero(t, testutil.ToFloat64(f.uc.metrics.BookingsCreatedTotal))
}
