package domain

import "time"

// User is a registered account. The password is only ever held as a bcrypt
// hash.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
