package availability

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения хранилища
	ErrInternal = errors.New("availability.ledger: storage error")
)
