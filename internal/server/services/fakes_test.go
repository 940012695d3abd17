package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/messages"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error

	touched  []string
	touchErr error

	listOut []*models.UserSummary
	listErr error

	fromOut []*models.OutgoingMessage
	toOut   []*models.IncomingMessage
	boxErr  error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	u.JoinAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	u.LastLoginAt = u.JoinAt
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) TouchLogin(_ context.Context, username string) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched = append(f.touched, username)
	return nil
}

func (f *fakeUsersRepo) List(context.Context) ([]*models.UserSummary, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) MessagesFrom(context.Context, string) ([]*models.OutgoingMessage, error) {
	return f.fromOut, f.boxErr
}

func (f *fakeUsersRepo) MessagesTo(context.Context, string) ([]*models.IncomingMessage, error) {
	return f.toOut, f.boxErr
}

type fakeMessagesRepo struct {
	createOut *models.MessageReceipt
	createErr error
	calls     int

	markOut *models.ReadReceipt
	markErr error

	getOut *models.FullMessage
	getErr error
}

func (f *fakeMessagesRepo) Create(_ context.Context, from, to, body string) (*models.MessageReceipt, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeMessagesRepo) MarkRead(context.Context, string) (*models.ReadReceipt, error) {
	return f.markOut, f.markErr
}

func (f *fakeMessagesRepo) Get(context.Context, string) (*models.FullMessage, error) {
	return f.getOut, f.getErr
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr error

	createErr error
	created   []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, username string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, username)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(context.Context, string) error {
	return f.delErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	m *fakeMessagesRepo
	r *fakeRefreshRepo

	txCalls int
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) WithTx(ctx context.Context, _ *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txCalls++
	return fn(ctx, nil)
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) Messages(dbx.DBTX) messages.Repository           { return m.m }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }

type recordingDispatcher struct {
	mu  sync.Mutex
	got []*models.MessageReceipt
}

func (d *recordingDispatcher) Dispatch(_ context.Context, r *models.MessageReceipt) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.got = append(d.got, r)
	return true
}

func (d *recordingDispatcher) receipts() []*models.MessageReceipt {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*models.MessageReceipt(nil), d.got...)
}
