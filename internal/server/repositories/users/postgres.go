package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 RETURNING join_at, last_login_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Phone).
		Scan(&user.JoinAt, &user.LastLoginAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT username, password, first_name, last_name, phone, join_at, last_login_at
		 FROM users
		 WHERE username = $1
		 `

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.JoinAt, &u.LastLoginAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *PostgresRepository) TouchLogin(ctx context.Context, username string) error {
	query :=
		`UPDATE users SET last_login_at = now()
		 WHERE username = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.UserSummary, error) {
	query :=
		`SELECT username, first_name, last_name
		 FROM users
		 ORDER BY username
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.UserSummary, 0)
	for rows.Next() {
		u := &models.UserSummary{}
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) MessagesFrom(ctx context.Context, username string) ([]*models.OutgoingMessage, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        t.username, t.first_name, t.last_name, t.phone
		 FROM messages AS m
		 JOIN users AS t ON m.to_username = t.username
		 WHERE m.from_username = $1
		 ORDER BY m.sent_at, m.id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.OutgoingMessage, 0)
	for rows.Next() {
		m := &models.OutgoingMessage{}
		var readAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &readAt,
			&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.ReadAt = dbx.TimePtr(readAt)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) MessagesTo(ctx context.Context, username string) ([]*models.IncomingMessage, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        f.username, f.first_name, f.last_name, f.phone
		 FROM messages AS m
		 JOIN users AS f ON m.from_username = f.username
		 WHERE m.to_username = $1
		 ORDER BY m.sent_at, m.id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.IncomingMessage, 0)
	for rows.Next() {
		m := &models.IncomingMessage{}
		var readAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &readAt,
			&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.ReadAt = dbx.TimePtr(readAt)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
