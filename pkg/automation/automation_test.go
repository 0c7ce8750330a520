package automation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"mindshift-be/internal/constant"
	"mindshift-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
}

func TestEnvelopeShape(t *testing.T) {
	env := NewEnvelope(constant.EventChatInteraction, "user-123", map[string]interface{}{"mode": "reframe"})

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "chat_interaction", decoded["event"])
	assert.Equal(t, "user-123", decoded["userId"])
	assert.Equal(t, "mindshift-app", decoded["source"])
	assert.Equal(t, map[string]interface{}{"mode": "reframe"}, decoded["data"])

	_, err = time.Parse(time.RFC3339, decoded["timestamp"].(string))
	assert.NoError(t, err)
}

func TestEnvelopeOmitsEmptyUserId(t *testing.T) {
	raw, err := json.Marshal(NewEnvelope(constant.EventMoodLogged, "", nil))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	_, present := decoded["userId"]
	assert.False(t, present)
	assert.NotNil(t, decoded["data"])
}

func TestPublishWithoutEndpointReturnsFalse(t *testing.T) {
	pub := NewPublisher("", "automation_events", newPubSub(), logger.NewNopLogger())

	assert.False(t, pub.Enabled())
	assert.False(t, pub.Publish(constant.EventChatInteraction, "user-1", nil))
}

func TestWebhookDelivery(t *testing.T) {
	var mu sync.Mutex
	var bodies [][]byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	pubSub := newPubSub()
	topic := "automation_events"
	log := logger.NewNopLogger()

	consumer := NewWebhookConsumer(server.URL, topic, pubSub, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	pub := NewPublisher(server.URL, topic, pubSub, log)
	assert.True(t, pub.Publish(constant.EventSessionCreated, "user-9", map[string]interface{}{"mode": "journal"}))

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(bodies)
		mu.Unlock()
		if n == 1 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal(bodies[0], &env))
	assert.Equal(t, "session_created", env.Event)
	assert.Equal(t, "user-9", env.UserId)
	assert.Equal(t, "mindshift-app", env.Source)
}

func TestWebhookFailureIsSwallowedWithoutRetry(t *testing.T) {
	var mu sync.Mutex
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	pubSub := newPubSub()
	topic := "automation_events"
	log := logger.NewNopLogger()

	consumer := NewWebhookConsumer(server.URL, topic, pubSub, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	pub := NewPublisher(server.URL, topic, pubSub, log)
	assert.True(t, pub.Publish(constant.EventGoalAction, "user-2", nil))

	// Give the consumer time to deliver once; a retry would show up here.
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits)
}
