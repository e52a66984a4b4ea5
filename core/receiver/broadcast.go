package receiver

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Broadcast represents a delivered system or application event.
type Broadcast struct {
	ID        string    `json:"id"`         // Unique identifier for the broadcast
	Action    string    `json:"action"`     // Action name the broadcast announces (e.g., "connectivity.changed")
	Payload   any       `json:"payload"`    // Broadcast data attached by the sender
	CreatedAt time.Time `json:"created_at"` // When the broadcast was created
}

// NewBroadcast creates a Broadcast with an auto-generated ID and timestamp.
//
// Example:
//
//	b := receiver.NewBroadcast("connectivity.changed", ConnectivityState{Online: true})
func NewBroadcast(action string, payload any) Broadcast {
	return Broadcast{
		ID:        uuid.New().String(),
		Action:    action,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// Filter selects the broadcasts a registration is interested in by action
// name. A Filter with no actions matches nothing.
type Filter struct {
	Actions []string `json:"actions"`
}

// NewFilter creates a Filter matching any of the given actions.
func NewFilter(actions ...string) Filter {
	return Filter{Actions: actions}
}

// Matches reports whether the filter selects broadcasts with the given action.
func (f Filter) Matches(action string) bool {
	return slices.Contains(f.Actions, action)
}

// Receiver handles broadcasts delivered to a registration.
type Receiver interface {
	// OnReceive is invoked for each matching broadcast.
	OnReceive(ctx context.Context, b Broadcast)
}

// ReceiverFunc adapts a function to the Receiver interface.
type ReceiverFunc func(ctx context.Context, b Broadcast)

// OnReceive implements the Receiver interface.
func (f ReceiverFunc) OnReceive(ctx context.Context, b Broadcast) {
	f(ctx, b)
}

// Scheduler identifies where matching broadcasts are delivered. It is
// forwarded to the host opaquely; ownership and lifetime stay with the
// caller. A nil Scheduler lets the host pick its default delivery context.
type Scheduler interface {
	// Schedule queues fn for execution on the scheduler's delivery context.
	Schedule(fn func())
}
