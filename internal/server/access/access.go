// Package access decides who may see or act on accounts and messages. It
// holds no state and performs no I/O; callers pass the authenticated
// username (empty when the request carries no identity).
package access

import (
	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// RequireIdentity fails with common.ErrorUnauthorized when actor is empty.
// Check it before any of the predicates below.
func RequireIdentity(actor string) error {
	if actor == "" {
		return common.ErrorUnauthorized
	}
	return nil
}

// CanView reports whether actor is the sender or the recipient of m.
func CanView(actor string, m *models.FullMessage) bool {
	if actor == "" || m == nil {
		return false
	}
	return actor == m.FromUser.Username || actor == m.ToUser.Username
}

// CanMarkRead reports whether actor is the recipient of m.
func CanMarkRead(actor string, m *models.FullMessage) bool {
	if actor == "" || m == nil {
		return false
	}
	return actor == m.ToUser.Username
}

// CanViewAccount reports whether actor may read username's profile and
// mailboxes. Only the account owner may.
func CanViewAccount(actor, username string) bool {
	return actor != "" && actor == username
}

func AuthorizeView(actor string, m *models.FullMessage) error {
	if err := RequireIdentity(actor); err != nil {
		return err
	}
	if !CanView(actor, m) {
		return common.ErrorForbidden
	}
	return nil
}

func AuthorizeMarkRead(actor string, m *models.FullMessage) error {
	if err := RequireIdentity(actor); err != nil {
		return err
	}
	if !CanMarkRead(actor, m) {
		return common.ErrorForbidden
	}
	return nil
}

func AuthorizeAccount(actor, username string) error {
	if err := RequireIdentity(actor); err != nil {
		return err
	}
	if !CanViewAccount(actor, username) {
		return common.ErrorForbidden
	}
	return nil
}
