package automation

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"mindshift-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// WebhookConsumer drains the outbound topic and POSTs each envelope to the
// automation endpoint. At-most-once: every message is acked no matter what
// happened to the HTTP call.
type WebhookConsumer struct {
	pubSub   *gochannel.GoChannel
	topic    string
	endpoint string
	client   *http.Client
	logger   logger.ILogger
}

func NewWebhookConsumer(endpoint, topic string, pubSub *gochannel.GoChannel, log logger.ILogger) *WebhookConsumer {
	return &WebhookConsumer{
		pubSub:   pubSub,
		topic:    topic,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   log,
	}
}

func (c *WebhookConsumer) Consume(ctx context.Context) error {
	if c.endpoint == "" {
		c.logger.Info("automation", "webhook consumer idle, no endpoint configured", nil)
		return nil
	}

	messages, err := c.pubSub.Subscribe(ctx, c.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.deliver(ctx, msg)
		}
	}()

	return nil
}

func (c *WebhookConsumer) deliver(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(msg.Payload))
	if err != nil {
		c.logger.Error("automation", "failed to build webhook request", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("automation", "webhook delivery failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("automation", "webhook rejected event", map[string]interface{}{
			"status": resp.StatusCode,
		})
	}
}
