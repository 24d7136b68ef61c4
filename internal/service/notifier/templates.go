package notifier

import (
	"fmt"

	"github.com/avdnk/DocBooking/internal/domain"
)

// Простые HTML-шаблоны писем. Вёрстка минимальная намеренно.

func bookingCreatedEmail(b *domain.Booking) (subject, body string) {
	subject = fmt.Sprintf("Appointment confirmed: %s", b.Code)
	body = fmt.Sprintf(
		"<h2>Your appointment is confirmed</h2>"+
			"<p>Hello %s,</p>"+
			"<p>Service: <b>%s</b><br>"+
			"Date: <b>%s</b><br>"+
			"Time: <b>%s</b></p>"+
			"<p>Booking code: <b>%s</b></p>"+
			"<p>Use this code together with your email to view, cancel or reschedule your appointment.</p>",
		b.CustomerName,
		b.ServiceName,
		b.BookingDate.Format(domain.DateFormat),
		b.StartTime,
		b.Code,
	)
	return subject, body
}

func doctorNotificationEmail(b *domain.Booking) (subject, body string) {
	subject = fmt.Sprintf("New appointment: %s %s", b.BookingDate.Format(domain.DateFormat), b.StartTime)
	body = fmt.Sprintf(
		"<h2>New appointment booked</h2>"+
			"<p>Service: <b>%s</b><br>"+
			"Date: <b>%s</b>, time: <b>%s</b><br>"+
			"Customer: %s (%s, %s)</p>"+
			"<p>Code: %s</p>",
		b.ServiceName,
		b.BookingDate.Format(domain.DateFormat),
		b.StartTime,
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.Code,
	)
	return subject, body
}

func bookingCancelledEmail(b *domain.Booking) (subject, body string) {
	subject = fmt.Sprintf("Appointment cancelled: %s", b.Code)
	body = fmt.Sprintf(
		"<h2>Your appointment has been cancelled</h2>"+
			"<p>Hello %s,</p>"+
			"<p>Your appointment <b>%s</b> (%s at %s) has been cancelled.</p>",
		b.CustomerName,
		b.Code,
		b.BookingDate.Format(domain.DateFormat),
		b.StartTime,
	)
	return subject, body
}

func bookingRescheduledEmail(b *domain.Booking) (subject, body string) {
	subject = fmt.Sprintf("Appointment rescheduled: %s", b.Code)
	body = fmt.Sprintf(
		"<h2>Your appointment has been rescheduled</h2>"+
			"<p>Hello %s,</p>"+
			"<p>Your appointment <b>%s</b> is now scheduled for <b>%s</b> at <b>%s</b>.</p>",
		b.CustomerName,
		b.Code,
		b.BookingDate.Format(domain.DateFormat),
		b.StartTime,
	)
	return subject, body
}
