package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db    dbx.DBTX
	newID func() string
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, newID: uuid.NewString}
}

func (r *PostgresRepository) Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageReceipt, error) {
	query :=
		`INSERT INTO messages (id, from_username, to_username, body, sent_at)
		 VALUES ($1, $2, $3, $4, now())
		 RETURNING id, from_username, to_username, body, sent_at
		 `

	m := &models.MessageReceipt{}
	err := r.db.QueryRowContext(ctx, query, r.newID(), fromUsername, toUsername, body).
		Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt)

	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrorForeignKey
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

// MarkRead only stamps rows whose read_at is still NULL, so under concurrent
// callers the first committed stamp is the one every caller sees.
func (r *PostgresRepository) MarkRead(ctx context.Context, id string) (*models.ReadReceipt, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}

	update :=
		`UPDATE messages SET read_at = now()
		 WHERE id = $1 AND read_at IS NULL
		 RETURNING id, read_at
		 `

	rr := &models.ReadReceipt{}
	err := r.db.QueryRowContext(ctx, update, id).Scan(&rr.ID, &rr.ReadAt)
	if err == nil {
		return rr, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	// Either the id is unknown or the message was read already.
	current :=
		`SELECT id, read_at FROM messages
		 WHERE id = $1
		 `

	var readAt sql.NullTime
	err = r.db.QueryRowContext(ctx, current, id).Scan(&rr.ID, &readAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if !readAt.Valid {
		return nil, fmt.Errorf("db error: message %s not stamped after conditional update", id)
	}
	rr.ReadAt = readAt.Time

	return rr, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.FullMessage, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        f.username, f.first_name, f.last_name, f.phone,
		        t.username, t.first_name, t.last_name, t.phone
		 FROM messages AS m
		 JOIN users AS f ON m.from_username = f.username
		 JOIN users AS t ON m.to_username = t.username
		 WHERE m.id = $1
		 `

	m := &models.FullMessage{}
	var readAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Body, &m.SentAt, &readAt,
		&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
		&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	m.ReadAt = dbx.TimePtr(readAt)

	return m, nil
}
