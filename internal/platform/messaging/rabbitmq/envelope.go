package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps every message published on the exchange.
type Envelope struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEnvelope marshals payload and stamps a fresh message ID.
func NewEnvelope(name string, occurredAt time.Time, payload any) (Envelope, error) {
	if name == "" {
		return Envelope{}, fmt.Errorf("event name is required")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("could not marshal %s payload: %w", name, err)
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return Envelope{
		ID:         uuid.NewString(),
		Name:       name,
		OccurredAt: occurredAt.UTC(),
		Payload:    body,
	}, nil
}

// Decode unmarshals the payload into target.
func (e Envelope) Decode(target any) error {
	return json.Unmarshal(e.Payload, target)
}
