// Package events publishes notifications about changes to transactions
// and budgets.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// swagger:enum Type
type Type string

const (
	TransactionCreated Type = "transaction.created"
	TransactionUpdated Type = "transaction.updated"
	TransactionDeleted Type = "transaction.deleted"
	BudgetCreated      Type = "budget.created"
	BudgetUpdated      Type = "budget.updated"
	BudgetDeleted      Type = "budget.deleted"
)

// Event describes a change to a resource of a user.
type Event struct {
	Type       Type      `json:"type"`
	UserID     uuid.UUID `json:"userId"`
	ResourceID uuid.UUID `json:"resourceId"`
	Timestamp  time.Time `json:"timestamp"`
}

// New returns an event with the current time as timestamp.
func New(t Type, userID, resourceID uuid.UUID) Event {
	return Event{
		Type:       t,
		UserID:     userID,
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
	}
}

// JSON returns the wire format of the event.
func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop is a Publisher that discards all events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error {
	return nil
}

func (Nop) Close() error {
	return nil
}
