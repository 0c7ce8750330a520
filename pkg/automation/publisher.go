package automation

import (
	"encoding/json"

	"mindshift-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Publisher hands envelopes to the outbound topic. The turn pipeline never
// waits on delivery; the webhook consumer picks messages up on its own
// goroutine.
type Publisher struct {
	pubSub  *gochannel.GoChannel
	topic   string
	enabled bool
	logger  logger.ILogger
}

// NewPublisher wires the outbound topic. An empty endpoint disables
// publishing entirely; that is a configuration state, not an error.
func NewPublisher(endpoint, topic string, pubSub *gochannel.GoChannel, log logger.ILogger) *Publisher {
	return &Publisher{
		pubSub:  pubSub,
		topic:   topic,
		enabled: endpoint != "",
		logger:  log,
	}
}

// Publish wraps the payload in an envelope and dispatches it. Returns false
// when publishing is disabled or hand-off fails; callers never treat that
// as a turn failure.
func (p *Publisher) Publish(kind, userId string, data map[string]interface{}) bool {
	if !p.enabled {
		p.logger.Warn("automation", "no automation endpoint configured, event skipped", map[string]interface{}{
			"event": kind,
		})
		return false
	}

	payload, err := json.Marshal(NewEnvelope(kind, userId, data))
	if err != nil {
		p.logger.Error("automation", "failed to marshal envelope", map[string]interface{}{
			"event": kind,
			"error": err.Error(),
		})
		return false
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		p.logger.Error("automation", "failed to hand off event", map[string]interface{}{
			"event": kind,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// Enabled reports whether an endpoint is configured.
func (p *Publisher) Enabled() bool {
	return p.enabled
}
