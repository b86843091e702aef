package blocks

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не существует
	ErrStylistNotFound = errors.New("blocks: stylist not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blocks: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocks: internal error")
)
