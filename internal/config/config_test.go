package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "AUTOMATION_EVENTS", cfg.Automation.TopicName)
	assert.Equal(t, 900*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, 2*time.Second, cfg.Chat.AutosaveDebounce)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("AUTOMATION_WEBHOOK_URL", "http://localhost:5678/webhook/mindshift")
	t.Setenv("REPLY_DELAY_MS", "50")

	cfg := Load()

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "http://localhost:5678/webhook/mindshift", cfg.Automation.WebhookURL)
	assert.Equal(t, 50*time.Millisecond, cfg.Chat.ReplyDelay)
}
