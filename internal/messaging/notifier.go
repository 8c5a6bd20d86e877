package messaging

import (
	"context"

	"courier/internal/messaging/model"
)

// Notifier is told about every newly created message exactly once. It is an
// optional capability: callers that don't want notifications pass nil to the
// usecase constructor. Delivery guarantees are the implementation's problem;
// a failed notification never fails the send.
type Notifier interface {
	NewMessage(ctx context.Context, msg *model.Message) error
}
