package list_blocks

import (
	"context"
	"time"

	"github.com/avdnk/DocBooking/internal/domain"
)

type BlocksService interface {
	List(ctx context.Context, from time.Time) ([]*domain.BlockedRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
