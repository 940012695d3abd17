package models

import "time"

type RefreshToken struct {
	ID        string
	Username  string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
