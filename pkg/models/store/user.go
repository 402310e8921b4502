package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores when a row does not exist or belongs to
// another user.
var ErrNotFound = errors.New("not found")

type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	CreatedAt    time.Time
}
