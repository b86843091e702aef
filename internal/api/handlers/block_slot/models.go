package block_slot

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/internal/service/blocks"
	"github.com/m04kA/salon-booking/pkg/types"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	StylistID int64   `json:"stylistId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockSlotRequest) ToServiceRequest() (*blocks.BlockSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &blocks.BlockSlotRequest{
		StylistID: r.StylistID,
		Date:      date,
		Time:      slotTime,
		Reason:    r.Reason,
	}, nil
}
