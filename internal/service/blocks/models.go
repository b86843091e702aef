package blocks

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// BlockDayRequest блокировка дня или диапазона дней [Date, To]
type BlockDayRequest struct {
	StylistID int64
	Date      time.Time
	To        *time.Time
	Reason    *string
}

// BlockSlotRequest блокировка одного слота
type BlockSlotRequest struct {
	StylistID int64
	Date      time.Time
	Time      types.TimeString
	Reason    *string
}

// BlockedDayResponse заблокированный день
type BlockedDayResponse struct {
	ID        int64   `json:"id"`
	StylistID int64   `json:"stylistId"`
	Date      string  `json:"date"`
	Reason    *string `json:"reason,omitempty"`
	Created   bool    `json:"created"`
}

// BlockedSlotResponse заблокированный слот
type BlockedSlotResponse struct {
	ID        int64   `json:"id"`
	StylistID int64   `json:"stylistId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Reason    *string `json:"reason,omitempty"`
	Created   bool    `json:"created"`
}

type BlockedDayListResponse struct {
	BlockedDays []BlockedDayResponse `json:"blockedDays"`
}

type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

func fromDomainDay(d *domain.BlockedDay, created bool) BlockedDayResponse {
	return BlockedDayResponse{
		ID:        d.ID,
		StylistID: d.StylistID,
		Date:      d.Date.Format(domain.DateFormat),
		Reason:    d.Reason,
		Created:   created,
	}
}

func fromDomainSlot(s *domain.BlockedSlot, created bool) BlockedSlotResponse {
	return BlockedSlotResponse{
		ID:        s.ID,
		StylistID: s.StylistID,
		Date:      s.Date.Format(domain.DateFormat),
		Time:      s.Time.String(),
		Reason:    s.Reason,
		Created:   created,
	}
}
