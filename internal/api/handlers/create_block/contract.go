package create_block

import (
	"context"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/internal/service/blocks"
)

type BlocksService interface {
	Create(ctx context.Context, req *blocks.CreateRequest) (*domain.BlockedRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
