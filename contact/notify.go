package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicReceived carries every accepted contact message.
const TopicReceived = "contact.received"

const metaKeyEmail = "email"

// Handler processes an announced message.
type Handler func(ctx context.Context, m Message) error

// Notifier is an in-process pub/sub for accepted contact messages.
type Notifier struct {
	pubsub *gochannel.GoChannel
}

// NewNotifier creates a Notifier backed by a watermill GoChannel.
func NewNotifier() *Notifier {
	logger := watermill.NewStdLogger(false, false)
	return &Notifier{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger),
	}
}

// Publish implements Publisher. Messages published while nobody is
// subscribed are dropped.
func (n *Notifier) Publish(m Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}
	wm := message.NewMessage(m.ID, payload)
	wm.Metadata.Set(metaKeyEmail, m.Email)
	return n.pubsub.Publish(TopicReceived, wm)
}

// Subscribe starts consuming TopicReceived with h in a goroutine. It returns
// once the subscription is active; consumption stops when ctx is cancelled
// or the Notifier is closed.
func (n *Notifier) Subscribe(ctx context.Context, h Handler) error {
	msgs, err := n.pubsub.Subscribe(ctx, TopicReceived)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", TopicReceived, err)
	}
	go func() {
		for wm := range msgs {
			var m Message
			if err := json.Unmarshal(wm.Payload, &m); err != nil {
				slog.Error("dropping undecodable contact message", "uuid", wm.UUID, "error", err)
				wm.Ack()
				continue
			}
			// The message is already stored, so a failed handler is logged
			// and acknowledged rather than redelivered.
			if err := h(wm.Context(), m); err != nil {
				slog.Error("contact message handler failed", "id", m.ID, "error", err)
			}
			wm.Ack()
		}
	}()
	return nil
}

// Close shuts down the underlying channel.
func (n *Notifier) Close() error {
	return n.pubsub.Close()
}

// LogReceived returns a Handler that logs each message. It stands in for an
// outbound e-mail integration.
func LogReceived(logger *slog.Logger) Handler {
	return func(ctx context.Context, m Message) error {
		logger.InfoContext(ctx, "contact message received",
			"id", m.ID,
			"name", m.Name,
			"email", m.Email,
			"length", len(m.Body),
		)
		return nil
	}
}
