package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
)

// ReceiptDispatcher hands a new message to the notification pipeline without
// waiting for delivery.
type ReceiptDispatcher interface {
	Dispatch(ctx context.Context, r *models.MessageReceipt) bool
}

// MessageService is the message ledger: it creates messages, stamps them
// read and loads them with both participants resolved. Authorization is the
// caller's job (see package access).
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	dispatcher  ReceiptDispatcher
	log         logging.Logger
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, d ReceiptDispatcher, log logging.Logger) *MessageService {
	return &MessageService{
		db:          db,
		repomanager: m,
		dispatcher:  d,
		log:         log,
	}
}

// Create stores a message from fromUsername to toUsername. Unknown users
// yield common.ErrorForeignKey. The receipt is dispatched to the recipient's
// notifier before returning.
func (s *MessageService) Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageReceipt, error) {
	switch {
	case fromUsername == "":
		return nil, fmt.Errorf("%w: sender is required", common.ErrorValidation)
	case toUsername == "":
		return nil, fmt.Errorf("%w: to_username is required", common.ErrorValidation)
	case body == "":
		return nil, fmt.Errorf("%w: body is required", common.ErrorValidation)
	}

	receipt, err := s.repomanager.Messages(s.db).Create(ctx, fromUsername, toUsername, body)
	if err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}

	s.log.Info(ctx, "message created", "id", receipt.ID, "from", receipt.FromUsername, "to", receipt.ToUsername)

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, receipt)
	}

	return receipt, nil
}

// MarkRead stamps the message read unless it already is, and returns the
// stamp that is stored.
func (s *MessageService) MarkRead(ctx context.Context, id string) (*models.ReadReceipt, error) {
	rr, err := s.repomanager.Messages(s.db).MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error marking message read: %w", err)
	}
	return rr, nil
}

func (s *MessageService) Get(ctx context.Context, id string) (*models.FullMessage, error) {
	m, err := s.repomanager.Messages(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading message: %w", err)
	}
	return m, nil
}
