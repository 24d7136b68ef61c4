package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/internal/domain"
	storage "github.com/avdnk/DocBooking/internal/infra/storage/service"
	"github.com/avdnk/DocBooking/internal/schedule"
	"github.com/avdnk/DocBooking/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.BlockedRange
	err    error
}

func (f *fakeBlockRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.BlockedRange, error) {
	return f.blocks, f.err
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func ptrTS(s string) *types.TimeString {
	t := ts(s)
	return &t
}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestUseCase(
	bookings []*domain.Booking,
	blocks []*domain.BlockedRange,
	durationMinutes int,
	window schedule.Window,
	open bool,
) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeBlockRepo{blocks: blocks},
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Консультация", DurationMinutes: durationMinutes}},
		&fakeSchedule{window: window, open: open},
		nopLogger{},
	)
}

func slotTimes(slots []Slot, available bool) []string {
	var out []string
	for _, s := range slots {
		if s.Available == available {
			out = append(out, s.StartTime.String())
		}
	}
	return out
}

func TestExecute_TilesWindowWithFixedStep(t *testing.T) {
	uc := newTestUseCase(nil, nil, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"16:00", "16:30", "17:00", "17:30"}, slotTimes(resp.Slots, true))
	assert.Empty(t, slotTimes(resp.Slots, false))
}

func TestExecute_LongServiceDropsTailSlots(t *testing.T) {
	// Услуга 45 минут: слот 17:30 закончился бы в 18:15 - не помещается.
	// Сетка остаётся 30-минутной, а не 45-минутной.
	uc := newTestUseCase(nil, nil, 45, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"16:00", "16:30", "17:00"}, slotTimes(resp.Slots, true))
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(nil, nil, 30, schedule.Window{}, false)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_FullDayBlockReturnsEmpty(t *testing.T) {
	blocks := []*domain.BlockedRange{{ID: 1, Date: testDate}}
	uc := newTestUseCase(nil, blocks, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_PartialBlockHidesOnlyCoveredStarts(t *testing.T) {
	// Блок [16:00, 16:30): скрыт только слот 16:00.
	// Слот 16:30 начинается ровно на границе и остаётся доступным.
	blocks := []*domain.BlockedRange{{
		ID:        1,
		Date:      testDate,
		StartTime: ptrTS("16:00"),
		EndTime:   ptrTS("16:30"),
	}}
	uc := newTestUseCase(nil, blocks, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"16:00"}, slotTimes(resp.Slots, false))
	assert.Equal(t, []string{"16:30", "17:00", "17:30"}, slotTimes(resp.Slots, true))
}

func TestExecute_ConfirmedBookingMarksOverlapsUnavailable(t *testing.T) {
	bookings := []*domain.Booking{{
		ID:              7,
		BookingDate:     testDate,
		StartTime:       "16:30",
		ServiceDuration: 30,
		Status:          domain.StatusConfirmed,
	}}
	uc := newTestUseCase(bookings, nil, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"16:30"}, slotTimes(resp.Slots, false))
	assert.Equal(t, []string{"16:00", "17:00", "17:30"}, slotTimes(resp.Slots, true))
}

func TestExecute_LongBookingBlocksSeveralSlots(t *testing.T) {
	// Бронирование 16:00 на 60 минут перекрывает слоты 16:00 и 16:30
	bookings := []*domain.Booking{{
		ID:              7,
		BookingDate:     testDate,
		StartTime:       "16:00",
		ServiceDuration: 60,
		Status:          domain.StatusConfirmed,
	}}
	uc := newTestUseCase(bookings, nil, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"16:00", "16:30"}, slotTimes(resp.Slots, false))
	assert.Equal(t, []string{"17:00", "17:30"}, slotTimes(resp.Slots, true))
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	bookings := []*domain.Booking{{
		ID:              7,
		BookingDate:     testDate,
		StartTime:       "16:00",
		ServiceDuration: 30,
		Status:          domain.StatusCancelled,
	}}
	uc := newTestUseCase(bookings, nil, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	assert.Empty(t, slotTimes(resp.Slots, false))
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeBlockRepo{},
		&fakeServiceRepo{err: storage.ErrServiceNotFound},
		&fakeSchedule{open: true},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{Date: testDate, ServiceID: 99})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, 30, schedule.Window{Start: "16:00", End: "18:00"}, true)

	_, err := uc.Execute(context.Background(), Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateSlotStarts_EndAlignsWithWindowEnd(t *testing.T) {
	// Слот, заканчивающийся ровно в конце окна, допустим
	starts := generateSlotStarts(schedule.Window{Start: "08:00", End: "10:00"}, 120)
	assert.Equal(t, []types.TimeString{"08:00"}, starts)

	starts = generateSlotStarts(schedule.Window{Start: "08:00", End: "10:00"}, 121)
	assert.Empty(t, starts)
}
