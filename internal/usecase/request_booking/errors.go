package request_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных или отсутствующих полях запроса
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrPastDate возвращается, когда дата записи раньше сегодняшней
	ErrPastDate = errors.New("request_booking: date is in the past")

	// ErrStylistNotFound возвращается, когда мастер не существует
	ErrStylistNotFound = errors.New("request_booking: stylist not found")

	// ErrStylistNotEligible возвращается, когда мастер не оказывает услугу (если проверка включена)
	ErrStylistNotEligible = errors.New("request_booking: stylist does not offer this service")

	// ErrStylistUnavailableDay возвращается, когда у мастера заблокирован весь день
	ErrStylistUnavailableDay = errors.New("request_booking: stylist unavailable on this day")

	// ErrSlotOccupied возвращается, когда слот заблокирован или занят активной записью
	ErrSlotOccupied = errors.New("request_booking: slot occupied")

	// ErrInternal возвращается при ошибках хранилища; транзакция откатывается
	ErrInternal = errors.New("request_booking: internal error")
)

// Метки исходов для метрики booking_requests_total
const (
	resultOK                 = "ok"
	resultInvalidInput       = "invalid_input"
	resultPastDate           = "past_date"
	resultStylistNotFound    = "stylist_not_found"
	resultStylistNotEligible = "stylist_not_eligible"
	resultDayBlocked         = "day_blocked"
	resultSlotOccupied       = "slot_occupied"
	resultInternal           = "internal"
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrInvalidInput):
		return resultInvalidInput
	case errors.Is(err, ErrPastDate):
		return resultPastDate
	case errors.Is(err, ErrStylistNotFound):
		return resultStylistNotFound
	case errors.Is(err, ErrStylistNotEligible):
		return resultStylistNotEligible
	case errors.Is(err, ErrStylistUnavailableDay):
		return resultDayBlocked
	case errors.Is(err, ErrSlotOccupied):
		return resultSlotOccupied
	default:
		return resultInternal
	}
}
