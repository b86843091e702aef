package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда уникальный индекс активного слота уже занят
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// Нарушения внешних ключей при вставке
	ErrClientNotFound  = errors.New("appointment.repository: client not found")
	ErrServiceNotFound = errors.New("appointment.repository: service not found")
	ErrStylistNotFound = errors.New("appointment.repository: stylist not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
