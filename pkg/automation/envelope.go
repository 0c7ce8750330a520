// Package automation notifies an external automation endpoint about app
// activity. Delivery is fire-and-forget: events are handed to an in-process
// topic and POSTed at most once, with failures logged and dropped.
package automation

import (
	"time"

	"mindshift-be/internal/constant"
)

// Envelope is the wire format expected by the automation webhook. It is
// never persisted; ownership ends at hand-off.
type Envelope struct {
	Event     string                 `json:"event"`
	UserId    string                 `json:"userId,omitempty"`
	Timestamp string                 `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Source    string                 `json:"source"`
}

func NewEnvelope(kind, userId string, data map[string]interface{}) Envelope {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Envelope{
		Event:     kind,
		UserId:    userId,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
		Source:    constant.AutomationSource,
	}
}
