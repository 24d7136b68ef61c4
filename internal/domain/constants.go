package domain

// Default configuration values
const (
	// SlotStepMinutes фиксированный шаг сетки слотов.
	// Слоты всегда начинаются на границе 30 минут, независимо от длительности услуги.
	SlotStepMinutes = 30

	DefaultBookingCodePrefix = "APT"

	DefaultSessionTTLMinutes = 120
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxCustomerNameLength = 200
	MaxCommentsLength     = 500
	MaxBlockReasonLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
