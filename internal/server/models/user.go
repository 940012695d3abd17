// Package models defines server-side data models and the projections handed
// out of the account directory and message ledger.
package models

import "time"

// User is a stored account row. PasswordHash never leaves the server.
type User struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	JoinAt       time.Time
	LastLoginAt  time.Time
}

// Profile projects the row onto its public attributes.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// Registration is the input of account registration. All fields are required.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserProfile is everything about a user except the password hash.
type UserProfile struct {
	Username    string
	FirstName   string
	LastName    string
	Phone       string
	JoinAt      time.Time
	LastLoginAt time.Time
}

// UserSummary is a row of the user directory listing.
type UserSummary struct {
	Username  string
	FirstName string
	LastName  string
}

// PublicProfile is the counterparty embedded in message views; it carries no
// login or join timestamps.
type PublicProfile struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}
