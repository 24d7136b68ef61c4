package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/integrations/googlecalendar"
	"github.com/avdnk/DocBooking/internal/integrations/mailer"
)

type fakeMailer struct {
	mu          sync.Mutex
	sent        []string // адресаты в порядке отправки
	doctorEmail string
	err         error
}

func (f *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) DoctorEmail() string { return f.doctorEmail }

func (f *fakeMailer) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type fakeCalendar struct {
	mu      sync.Mutex
	added   []googlecalendar.Event
	updated []string
	removed []string
	err     error
}

func (f *fakeCalendar) AddEvent(_ context.Context, event googlecalendar.Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.added = append(f.added, event)
	return "evt-1", nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, eventID string, _, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, eventID)
	return f.err
}

func (f *fakeCalendar) RemoveEvent(_ context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, eventID)
	return f.err
}

func (f *fakeCalendar) ArchiveEvent(_ context.Context, eventID string) error {
	return f.err
}

type fakeEventStore struct {
	mu  sync.Mutex
	set map[int64]*string
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{set: make(map[int64]*string)}
}

func (f *fakeEventStore) SetCalendarEventID(_ context.Context, id int64, eventID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set[id] = eventID
	return nil
}

type countingLogger struct {
	mu     sync.Mutex
	errors int
}

func (l *countingLogger) Info(string, ...interface{}) {}
func (l *countingLogger) Warn(string, ...interface{}) {}
func (l *countingLogger) Error(string, ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors++
}

func (l *countingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

func newTestService(mail *fakeMailer, cal *fakeCalendar, bookingStore, blockStore *fakeEventStore, logger *countingLogger) *Service {
	return NewService(mail, cal, bookingStore, blockStore, time.UTC, nil, logger)
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		Code:            "APT-20260901-K7N2",
		BookingDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "16:00",
		CustomerName:    "Ivan Petrov",
		CustomerEmail:   "ivan@example.com",
		Status:          domain.StatusConfirmed,
		ServiceName:     "Consultation",
		ServiceDuration: 30,
	}
}

func TestBookingCreated(t *testing.T) {
	mail := &fakeMailer{doctorEmail: "doctor@example.com"}
	cal := &fakeCalendar{}
	bookingStore := newFakeEventStore()
	logger := &countingLogger{}
	svc := newTestService(mail, cal, bookingStore, newFakeEventStore(), logger)

	svc.BookingCreated(confirmedBooking())
	svc.Wait()

	assert.ElementsMatch(t, []string{"ivan@example.com", "doctor@example.com"}, mail.sentTo())
	require.Len(t, cal.added, 1)
	assert.Equal(t, "Consultation - Ivan Petrov", cal.added[0].Summary)
	assert.Equal(t, 30*time.Minute, cal.added[0].End.Sub(cal.added[0].Start))

	// ID события сохранён у бронирования
	require.Contains(t, bookingStore.set, int64(42))
	require.NotNil(t, bookingStore.set[42])
	assert.Equal(t, "evt-1", *bookingStore.set[42])

	assert.Zero(t, logger.errorCount())
}

func TestBookingCreated_NoDoctorEmail(t *testing.T) {
	mail := &fakeMailer{}
	svc := newTestService(mail, &fakeCalendar{}, newFakeEventStore(), newFakeEventStore(), &countingLogger{})

	svc.BookingCreated(confirmedBooking())
	svc.Wait()

	assert.Equal(t, []string{"ivan@example.com"}, mail.sentTo())
}

func TestBookingCancelled_RemovesEventOnce(t *testing.T) {
	eventID := "evt-1"
	booking := confirmedBooking()
	booking.CalendarEventID = &eventID
	booking.Status = domain.StatusCancelled

	cal := &fakeCalendar{}
	bookingStore := newFakeEventStore()
	svc := newTestService(&fakeMailer{}, cal, bookingStore, newFakeEventStore(), &countingLogger{})

	svc.BookingCancelled(booking)
	svc.Wait()

	assert.Equal(t, []string{"evt-1"}, cal.removed)
	// Ссылка на событие обнулена
	require.Contains(t, bookingStore.set, int64(42))
	assert.Nil(t, bookingStore.set[42])
}

func TestBookingCancelled_WithoutEvent(t *testing.T) {
	cal := &fakeCalendar{}
	mail := &fakeMailer{}
	svc := newTestService(mail, cal, newFakeEventStore(), newFakeEventStore(), &countingLogger{})

	svc.BookingCancelled(confirmedBooking())
	svc.Wait()

	assert.Empty(t, cal.removed)
	assert.Equal(t, []string{"ivan@example.com"}, mail.sentTo())
}

func TestBookingRescheduled(t *testing.T) {
	eventID := "evt-1"
	booking := confirmedBooking()
	booking.CalendarEventID = &eventID

	cal := &fakeCalendar{}
	svc := newTestService(&fakeMailer{}, cal, newFakeEventStore(), newFakeEventStore(), &countingLogger{})

	svc.BookingRescheduled(booking)
	svc.Wait()

	assert.Equal(t, []string{"evt-1"}, cal.updated)
}

func TestRangeBlocked(t *testing.T) {
	reason := "vacation"
	block := &domain.BlockedRange{
		ID:     3,
		Date:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Reason: &reason,
	}

	cal := &fakeCalendar{}
	blockStore := newFakeEventStore()
	svc := newTestService(&fakeMailer{}, cal, newFakeEventStore(), blockStore, &countingLogger{})

	svc.RangeBlocked(block)
	svc.Wait()

	require.Len(t, cal.added, 1)
	assert.Equal(t, "BLOCKED: vacation", cal.added[0].Summary)
	// Полный день
	assert.Equal(t, 24*time.Hour, cal.added[0].End.Sub(cal.added[0].Start))
	require.NotNil(t, blockStore.set[3])
}

func TestRangeUnblocked_WithoutEventIsNoop(t *testing.T) {
	cal := &fakeCalendar{}
	svc := newTestService(&fakeMailer{}, cal, newFakeEventStore(), newFakeEventStore(), &countingLogger{})

	svc.RangeUnblocked(&domain.BlockedRange{ID: 3})
	svc.Wait()

	assert.Empty(t, cal.removed)
}

func TestDisabledIntegrationsAreNotFailures(t *testing.T) {
	mail := &fakeMailer{err: mailer.ErrDisabled}
	cal := &fakeCalendar{err: googlecalendar.ErrDisabled}
	logger := &countingLogger{}
	svc := newTestService(mail, cal, newFakeEventStore(), newFakeEventStore(), logger)

	svc.BookingCreated(confirmedBooking())
	svc.Wait()

	assert.Zero(t, logger.errorCount())
}

func TestRealFailuresAreLogged(t *testing.T) {
	mail := &fakeMailer{err: assert.AnError}
	logger := &countingLogger{}
	svc := newTestService(mail, &fakeCalendar{}, newFakeEventStore(), newFakeEventStore(), logger)

	booking := confirmedBooking()
	svc.BookingCreated(booking)
	svc.Wait()

	// Два письма упали (клиенту и врачу не было - DoctorEmail пуст), календарь прошёл
	assert.GreaterOrEqual(t, logger.errorCount(), 1)
}
