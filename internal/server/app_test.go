package server

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/messagely/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	syncs int
}

func (b *syncBuffer) Sync() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.syncs++
	return nil
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func memoryConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	cfg.DatabaseDSN = ""
	return cfg
}

func withOpenDB(t *testing.T, fn func(string) (*sql.DB, error)) {
	t.Helper()
	orig := openDB
	openDB = fn
	t.Cleanup(func() { openDB = orig })
}

func TestNewApp_InMemory(t *testing.T) {
	out := &syncBuffer{}
	app, err := NewApp(context.Background(), memoryConfig(), out)
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.db)
	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.messageService)
	assert.Contains(t, out.String(), "in-memory storage")
}

func TestApp_CloseFlushesLogger(t *testing.T) {
	cfg := memoryConfig()
	cfg.LogFormat = "zap"
	out := &syncBuffer{}

	app, err := NewApp(context.Background(), cfg, out)
	require.NoError(t, err)
	app.Close()

	out.mu.Lock()
	defer out.mu.Unlock()
	assert.Equal(t, 1, out.syncs)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.SecretKey = ""

	_, err := NewApp(context.Background(), cfg, &syncBuffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret key")
}

func TestNewApp_BadLogFormat(t *testing.T) {
	cfg := memoryConfig()
	cfg.LogFormat = "xml"

	_, err := NewApp(context.Background(), cfg, &syncBuffer{})
	require.Error(t, err)
}

func TestNewApp_OpenDBError(t *testing.T) {
	withOpenDB(t, func(string) (*sql.DB, error) { return nil, errors.New("no driver") })

	cfg := memoryConfig()
	cfg.DatabaseDSN = "postgres://example"

	_, err := NewApp(context.Background(), cfg, &syncBuffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_MigrationError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	withOpenDB(t, func(string) (*sql.DB, error) { return db, nil })

	cfg := memoryConfig()
	cfg.DatabaseDSN = "postgres://example"

	_, err = NewApp(context.Background(), cfg, &syncBuffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	out := &syncBuffer{}
	app, err := NewApp(context.Background(), memoryConfig(), out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}

	assert.True(t, strings.Contains(out.String(), "App stopped"))
	app.Close()
}

func TestApp_RunBadAddress(t *testing.T) {
	cfg := memoryConfig()
	cfg.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), cfg, &syncBuffer{})
	require.NoError(t, err)

	require.Error(t, app.Run(context.Background()))
}
