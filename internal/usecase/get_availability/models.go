package get_availability

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// Request модель запроса доступности
type Request struct {
	StylistID int64
	Date      string // "2025-10-15"
}

// Response снимок доступности и свободные слоты сетки
type Response struct {
	StylistID     int64
	StylistName   string
	Date          time.Time
	PastDate      bool // true для прошедшей даты; FreeSlots тогда пуст
	DayBlocked    bool
	BlockedSlots  []types.TimeString
	OccupiedSlots []types.TimeString
	FreeSlots     []types.TimeString
}
