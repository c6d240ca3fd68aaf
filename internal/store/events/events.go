package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCollectionCreated = "collection.created"
	TypeCollectionUpdated = "collection.updated"
	TypeDocumentCreated   = "document.created"
	TypeDocumentUpdated   = "document.updated"
	TypeDocumentDeleted   = "document.deleted"
)

// Event is the lifecycle notification emitted after a successful write.
type Event struct {
	EventID    string         `json:"event_id"`
	EventType  string         `json:"event_type"`
	Token      string         `json:"token"`
	DocumentID string         `json:"document_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func NewEvent(eventType, token, documentID string, payload map[string]any) Event {
	return Event{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Token:      token,
		DocumentID: documentID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
