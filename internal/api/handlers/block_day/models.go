package block_day

import (
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/internal/service/blocks"
)

// BlockDayRequest HTTP request model. To задаёт конец диапазона включительно.
type BlockDayRequest struct {
	StylistID int64   `json:"stylistId"`
	Date      string  `json:"date"`
	To        *string `json:"to,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockDayRequest) ToServiceRequest() (*blocks.BlockDayRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &blocks.BlockDayRequest{
		StylistID: r.StylistID,
		Date:      date,
		Reason:    r.Reason,
	}
	if r.To != nil && *r.To != "" {
		to, err := time.Parse(domain.DateFormat, *r.To)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}
	return req, nil
}
