package models

import "time"

// MessageReceipt is returned by message creation and handed to notifiers.
type MessageReceipt struct {
	ID           string    `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

// ReadReceipt is returned by MarkRead.
type ReadReceipt struct {
	ID     string
	ReadAt time.Time
}

// FullMessage is a message with both participants resolved.
// ReadAt is nil until the recipient marks the message as read.
type FullMessage struct {
	ID       string
	Body     string
	SentAt   time.Time
	ReadAt   *time.Time
	FromUser PublicProfile
	ToUser   PublicProfile
}

// IsRead reports whether the message left the CREATED state.
func (m *FullMessage) IsRead() bool {
	return m.ReadAt != nil
}

// OutgoingMessage is a sent message seen from the sender's mailbox.
type OutgoingMessage struct {
	ID     string
	ToUser PublicProfile
	Body   string
	SentAt time.Time
	ReadAt *time.Time
}

// IncomingMessage is a received message seen from the recipient's mailbox.
type IncomingMessage struct {
	ID       string
	FromUser PublicProfile
	Body     string
	SentAt   time.Time
	ReadAt   *time.Time
}
