package get_available_slots

import (
	"time"

	"github.com/avdnk/DocBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
	ServiceID int64     // ID услуги (определяет длительность слота)
}

// Response модель ответа со слотами на день
type Response struct {
	Date      time.Time
	ServiceID int64
	Slots     []Slot // Пустой список: день заблокирован или выходной
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "16:30")
	Available bool             // Свободен ли слот для бронирования
}
