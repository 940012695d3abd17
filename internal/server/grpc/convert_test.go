package grpc

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestToUserProfile_NeverLoggedIn(t *testing.T) {
	joined := time.Date(2026, 4, 30, 9, 0, 0, 0, time.UTC)
	p := toUserProfile(&models.UserProfile{Username: "alice", JoinAt: joined})

	require.NotNil(t, p.GetJoinAt())
	assert.True(t, joined.Equal(p.GetJoinAt().AsTime()))
	assert.Nil(t, p.GetLastLoginAt())
}

func TestReadAt_SurvivesTheWire(t *testing.T) {
	sent := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	read := sent.Add(5 * time.Minute)

	tests := []struct {
		name   string
		readAt *time.Time
	}{
		{"unread", nil},
		{"read", &read},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := aliceToBob()
			m.SentAt = sent
			m.ReadAt = tt.readAt

			b, err := proto.Marshal(toFullMessage(m))
			require.NoError(t, err)

			var got api.FullMessage
			require.NoError(t, proto.Unmarshal(b, &got))

			assert.Equal(t, "m1", got.GetId())
			assert.Equal(t, "bob", got.GetToUser().GetUsername())
			assert.True(t, sent.Equal(got.GetSentAt().AsTime()))
			if tt.readAt == nil {
				assert.Nil(t, got.GetReadAt())
				return
			}
			require.NotNil(t, got.GetReadAt())
			assert.True(t, read.Equal(got.GetReadAt().AsTime()))
		})
	}
}

func TestToOutgoingAndIncoming(t *testing.T) {
	read := time.Date(2026, 5, 1, 12, 5, 0, 0, time.UTC)

	out := toOutgoing([]*models.OutgoingMessage{
		{ID: "m1", ToUser: models.PublicProfile{Username: "bob"}, ReadAt: &read},
		{ID: "m2", ToUser: models.PublicProfile{Username: "bob"}},
	})
	require.Len(t, out, 2)
	assert.True(t, read.Equal(out[0].GetReadAt().AsTime()))
	assert.Nil(t, out[1].GetReadAt())

	in := toIncoming([]*models.IncomingMessage{{ID: "m3", FromUser: models.PublicProfile{Username: "alice"}}})
	require.Len(t, in, 1)
	assert.Equal(t, "alice", in[0].GetFromUser().GetUsername())
	assert.Nil(t, in[0].GetReadAt())

	assert.Empty(t, toOutgoing(nil))
}
