package clients

import "errors"

var (
	// ErrPhoneTaken возвращается при регистрации на уже занятый телефон
	ErrPhoneTaken = errors.New("clients: phone already registered")

	// ErrInvalidCredentials возвращается при неверном телефоне или пароле
	ErrInvalidCredentials = errors.New("clients: invalid credentials")

	ErrInvalidInput = errors.New("clients: invalid input data")
	ErrInternal     = errors.New("clients: internal error")
)
