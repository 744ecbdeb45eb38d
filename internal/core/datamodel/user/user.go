package user

import "time"

// User is an authentication account. Accounts are created by registration
// and never deleted by the application.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
