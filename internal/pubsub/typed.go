package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Event[T] wraps a topic name and provides type-safe publishing and decoding.
type Event[T any] struct {
	topicName   string
	description string
}

var (
	registryMu sync.Mutex
	registry   = map[string]string{}
)

// NewEvent creates a typed event and records it in the topic registry.
// Events are defined at package level; a duplicate name is a programming
// error and panics.
func NewEvent[T any](name string, description string) Event[T] {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("pubsub: topic %q registered twice", name))
	}
	registry[name] = description
	return Event[T]{topicName: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Description returns the human-readable topic description.
func (e Event[T]) Description() string {
	return e.description
}

// Topic is a registered topic name with its description.
type Topic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Topics lists every registered topic in name order.
func Topics() []Topic {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Topic, 0, len(registry))
	for name, desc := range registry {
		out = append(out, Topic{Name: name, Description: desc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], submissionID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:        event.Name(),
		SubmissionID: submissionID,
		Payload:      data,
	})
}

// Subscribe registers a typed handler for event.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, submissionID string, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", event.Name(), err)
		}
		return handler(ctx, msg.SubmissionID, payload)
	})
}
