// Package services contains server-side business logic. UserService is the
// account directory: registration, credential checks, login bookkeeping,
// profile and mailbox reads, and issuing/refreshing JWTs plus server-stored
// refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/cryptox"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/config"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// dummyPassword is hashed when the service is built so that authenticating
// an unknown user costs the same bcrypt comparison as a known one.
const dummyPassword = "messagely-no-such-user"

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *cryptox.PasswordHasher
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	dummyHash                    string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	s := &UserService{
		db:                           db,
		repomanager:                  m,
		hasher:                       cryptox.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
	// The cost is clamped and the input is short, so only a failing
	// random source can make this return an error.
	s.dummyHash, _ = s.hasher.Hash([]byte(dummyPassword))
	return s
}

// Register validates reg, stores the user with a bcrypt hash of the password
// and returns the new profile. Duplicate usernames yield
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash([]byte(reg.Password))
	if err != nil {
		if cryptox.IsPasswordTooLong(err) {
			return nil, fmt.Errorf("%w: password is longer than 72 bytes", common.ErrorValidation)
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     reg.Username,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Phone:        reg.Phone,
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u.Profile(), nil
}

func validateRegistration(reg models.Registration) error {
	fields := []struct{ name, value string }{
		{"username", reg.Username},
		{"password", reg.Password},
		{"first_name", reg.FirstName},
		{"last_name", reg.LastName},
		{"phone", reg.Phone},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}
	return nil
}

// Authenticate reports whether password matches the stored hash for
// username. Unknown users are false, not an error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify([]byte(password), s.dummyHash)
			return false, nil
		}
		return false, fmt.Errorf("error loading user: %w", err)
	}

	return s.hasher.Verify([]byte(password), user.PasswordHash), nil
}

// TouchLogin records a successful login. Unknown usernames are ignored.
func (s *UserService) TouchLogin(ctx context.Context, username string) error {
	if err := s.repomanager.Users(s.db).TouchLogin(ctx, username); err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// List returns every user ordered by username.
func (s *UserService) List(ctx context.Context) ([]*models.UserSummary, error) {
	list, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

// Get returns username's profile or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*models.UserProfile, error) {
	u, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return u.Profile(), nil
}

func (s *UserService) MessagesFrom(ctx context.Context, username string) ([]*models.OutgoingMessage, error) {
	msgs, err := s.repomanager.Users(s.db).MessagesFrom(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error loading sent messages: %w", err)
	}
	return msgs, nil
}

func (s *UserService) MessagesTo(ctx context.Context, username string) ([]*models.IncomingMessage, error) {
	msgs, err := s.repomanager.Users(s.db).MessagesTo(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error loading received messages: %w", err)
	}
	return msgs, nil
}

// Login checks the credentials, stamps the login and returns a new
// TokenPair. Bad credentials yield common.ErrorUnauthorized without saying
// which part was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	if err := s.TouchLogin(ctx, username); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return s.generateTokenPair(ctx, username, s.db)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired;
// unknown or already rotated ones yield ErrInvalidToken.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair

	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		token, err := repo.Find(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error searching refresh token: %w", err)
		}

		if token.Expires.Before(time.Now()) {
			return common.ErrRefreshTokenExpired
		}

		if err := repo.Delete(ctx, refreshToken); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}

		pair, err = s.generateTokenPair(ctx, token.Username, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

func (s *UserService) generateAccessToken(username string) (string, error) {
	return auth.GenerateToken(username, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, username string, db dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if err := s.repomanager.RefreshTokens(db).Create(ctx, username, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
