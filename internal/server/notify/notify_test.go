package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.NewZapLogger(zap.New(core)), logs
}

func receipt(id string) *models.MessageReceipt {
	return &models.MessageReceipt{
		ID:           id,
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "hi",
		SentAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

type recordingNotifier struct {
	mu    sync.Mutex
	got   []string
	err   error
	block chan struct{}
}

func (n *recordingNotifier) Notify(ctx context.Context, r *models.MessageReceipt) error {
	if n.block != nil {
		select {
		case <-n.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, r.ID)
	return n.err
}

type panickingNotifier struct {
	recordingNotifier
	panicOn string
}

func (n *panickingNotifier) Notify(ctx context.Context, r *models.MessageReceipt) error {
	if r.ID == n.panicOn {
		panic("notifier bug")
	}
	return n.recordingNotifier.Notify(ctx, r)
}

func (n *recordingNotifier) ids() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.got...)
}

type fakePublisher struct {
	channel string
	payload string
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, channel, payload string) error {
	p.channel = channel
	p.payload = payload
	return p.err
}

func TestLogNotifier_LogsWithoutBody(t *testing.T) {
	log, logs := observedLogger()

	require.NoError(t, NewLogNotifier(log).Notify(context.Background(), receipt("m1")))

	entries := logs.FilterMessage("new message").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "m1", fields["id"])
	assert.Equal(t, "bob", fields["to"])
	assert.NotContains(t, fields, "body")
}

func TestValkeyNotifier_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	n := NewValkeyNotifier(pub, "")

	require.NoError(t, n.Notify(context.Background(), receipt("m1")))
	assert.Equal(t, DefaultChannel, pub.channel)

	var got models.MessageReceipt
	require.NoError(t, json.Unmarshal([]byte(pub.payload), &got))
	assert.Equal(t, *receipt("m1"), got)
}

func TestValkeyNotifier_CustomChannelAndError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("conn refused")}
	n := NewValkeyNotifier(pub, "custom")

	err := n.Notify(context.Background(), receipt("m1"))
	require.Error(t, err)
	assert.Equal(t, "custom", pub.channel)
	assert.Contains(t, err.Error(), "publish to custom")
}

func TestDispatcher_DeliversAll(t *testing.T) {
	log, _ := observedLogger()
	rec := &recordingNotifier{}
	d := NewDispatcher(rec, log, 3, 16, time.Second)

	for _, id := range []string{"a", "b", "c", "d"} {
		assert.True(t, d.Dispatch(context.Background(), receipt(id)))
	}
	d.Stop()

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, rec.ids())
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	log, logs := observedLogger()
	rec := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(rec, log, 1, 1, time.Minute)

	// The worker picks up the first receipt and blocks; the second fills the
	// queue; the third is dropped.
	require.True(t, d.Dispatch(context.Background(), receipt("a")))
	require.Eventually(t, func() bool { return len(d.queue) == 0 }, time.Second, time.Millisecond)
	require.True(t, d.Dispatch(context.Background(), receipt("b")))
	assert.False(t, d.Dispatch(context.Background(), receipt("c")))
	assert.Equal(t, 1, logs.FilterMessage("notification dropped, queue full").Len())

	close(rec.block)
	d.Stop()
	assert.ElementsMatch(t, []string{"a", "b"}, rec.ids())
}

func TestDispatcher_FailuresAreLogged(t *testing.T) {
	log, logs := observedLogger()
	rec := &recordingNotifier{err: errors.New("sms gateway down")}
	d := NewDispatcher(rec, log, 1, 4, time.Second)

	assert.True(t, d.Dispatch(context.Background(), receipt("a")))
	d.Stop()

	assert.Equal(t, 1, logs.FilterMessage("notification failed").Len())
}

func TestDispatcher_NotifierPanicIsLogged(t *testing.T) {
	log, logs := observedLogger()
	n := &panickingNotifier{panicOn: "a"}
	d := NewDispatcher(n, log, 1, 4, time.Second)

	assert.True(t, d.Dispatch(context.Background(), receipt("a")))
	assert.True(t, d.Dispatch(context.Background(), receipt("b")))
	d.Stop()

	entries := logs.FilterMessage("notifier panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ContextMap()["id"])
	assert.Equal(t, []string{"b"}, n.ids(), "the only worker must survive the panic")
}

func TestDispatcher_TimeoutBoundsDelivery(t *testing.T) {
	log, logs := observedLogger()
	rec := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(rec, log, 1, 4, 10*time.Millisecond)

	assert.True(t, d.Dispatch(context.Background(), receipt("a")))
	d.Stop()

	entries := logs.FilterMessage("notification failed").All()
	require.Len(t, entries, 1)
	assert.Empty(t, rec.ids())
}

func TestDispatcher_StopIsIdempotentAndRejects(t *testing.T) {
	d := NewDispatcher(&recordingNotifier{}, logging.Nop{}, 0, 0, 0)
	d.Stop()
	d.Stop()

	assert.False(t, d.Dispatch(context.Background(), receipt("late")))
}

func TestDispatcher_CopiesReceipt(t *testing.T) {
	rec := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(rec, logging.Nop{}, 1, 4, time.Second)

	r := receipt("orig")
	require.True(t, d.Dispatch(context.Background(), r))
	r.ID = "mutated"

	close(rec.block)
	d.Stop()
	assert.Equal(t, []string{"orig"}, rec.ids())
}
