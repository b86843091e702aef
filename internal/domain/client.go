package domain

import "time"

// Client represents a registered salon customer. Phone is the natural key.
type Client struct {
	ID           int64
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}
