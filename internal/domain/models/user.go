package models

import "time"

// User is a registered farm operator account. Email doubles as the unique
// lookup key. Passwords are stored as bcrypt hashes, never plaintext.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	FarmName     string    `json:"farmName"`
	Location     string    `json:"location"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
