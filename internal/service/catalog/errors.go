package catalog

import "errors"

var (
	ErrStylistNotFound = errors.New("catalog: stylist not found")
	ErrServiceNotFound = errors.New("catalog: service not found")
	ErrInvalidInput    = errors.New("catalog: invalid input data")
	ErrInternal        = errors.New("catalog: internal error")
)
