package request_booking

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// Request модель запроса на запись
type Request struct {
	ClientID  int64   // ID клиента
	ServiceID int64   // ID услуги
	StylistID *int64  // ID мастера; nil = без мастера
	Date      string  // "2025-10-15"
	Time      string  // "10:00"
	Notes     *string // Комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StylistID *int64
	Date      time.Time
	Time      types.TimeString
	Status    string
	Notes     *string
	CreatedAt time.Time
}
