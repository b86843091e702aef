package clients

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // предел bcrypt
	minPhoneDigits    = 6
	maxPhoneDigits    = 15
	maxNameLength     = 255
)

// normalizePhone убирает пробелы, дефисы и скобки; допускается ведущий "+"
func normalizePhone(raw string) (string, error) {
	var b strings.Builder
	digits := 0
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return "", fmt.Errorf("%w: phone contains %q", ErrInvalidInput, r)
		}
	}
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return "", fmt.Errorf("%w: phone must have %d-%d digits", ErrInvalidInput, minPhoneDigits, maxPhoneDigits)
	}
	return b.String(), nil
}

func validateRegister(req *RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxNameLength)
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be %d-%d bytes", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}
	return nil
}
