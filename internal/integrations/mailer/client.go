// Package mailer SMTP-клиент для отправки уведомлений.
// Отправка всегда best-effort: ошибки логируются вызывающей стороной
// и никогда не влияют на основную операцию.
package mailer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/avdnk/DocBooking/internal/config"
)

const dialTimeout = 15 * time.Second

// Client SMTP-клиент поверх gomail
type Client struct {
	cfg config.SMTPConfig
}

// NewClient создает новый SMTP-клиент
func NewClient(cfg config.SMTPConfig) *Client {
	return &Client{cfg: cfg}
}

// Send отправляет письмо с HTML-телом.
// Уважает дедлайн контекста, если он наступает раньше таймаута отправки.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !c.cfg.Enabled {
		return ErrDisabled
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	wait := dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSend, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

// DoctorEmail возвращает адрес врача для служебных уведомлений
func (c *Client) DoctorEmail() string {
	return c.cfg.DoctorEmail
}
