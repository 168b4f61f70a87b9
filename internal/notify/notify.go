// Package notify is the advisory event surface: stores inform it after
// mutations and auth failures, never query it.
package notify

import "context"

const (
	TopicCartEvents = "cart_events"
	TopicUserEvents = "user_events"
)

type Events interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// Noop swallows events. Used in tests and when no broker is configured.
type Noop struct{}

func (Noop) PublishEvent(ctx context.Context, topic, key string, event any) error {
	return nil
}
