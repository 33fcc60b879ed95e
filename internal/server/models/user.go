package models

import "time"

type User struct {
	ID           string
	UserName     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
