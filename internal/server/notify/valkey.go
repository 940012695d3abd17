package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/valkey-io/valkey-go"
)

// DefaultChannel is the pub/sub channel receipts are published on.
const DefaultChannel = "messagely:messages"

// Publisher is the slice of a pub/sub client ValkeyNotifier needs.
type Publisher interface {
	Publish(ctx context.Context, channel, payload string) error
}

// ValkeyNotifier publishes JSON encoded receipts for downstream workers
// (SMS gateways, websocket hubs) to fan out.
type ValkeyNotifier struct {
	pub     Publisher
	channel string
}

func NewValkeyNotifier(pub Publisher, channel string) *ValkeyNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &ValkeyNotifier{pub: pub, channel: channel}
}

func (n *ValkeyNotifier) Notify(ctx context.Context, r *models.MessageReceipt) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode receipt: %w", err)
	}
	if err := n.pub.Publish(ctx, n.channel, string(payload)); err != nil {
		return fmt.Errorf("publish to %s: %w", n.channel, err)
	}
	return nil
}

// ValkeyPublisher adapts a valkey client to Publisher.
type ValkeyPublisher struct {
	client valkey.Client
}

// DialValkey connects to the valkey server at addr.
func DialValkey(addr string) (*ValkeyPublisher, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("valkey connect %s: %w", addr, err)
	}
	return &ValkeyPublisher{client: client}, nil
}

func (p *ValkeyPublisher) Publish(ctx context.Context, channel, payload string) error {
	cmd := p.client.B().Publish().Channel(channel).Message(payload).Build()
	return p.client.Do(ctx, cmd).Error()
}

func (p *ValkeyPublisher) Close() {
	p.client.Close()
}
