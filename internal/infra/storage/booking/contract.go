package booking

import "github.com/avdnk/DocBooking/pkg/txmanager"

// Переиспользуем интерфейс executor-а из txmanager
type DBExecutor = txmanager.DBExecutor
