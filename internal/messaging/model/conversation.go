package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the identity every message in one thread points at.
// It carries no state of its own: soft deletion happens per user on the
// head and the messages, never here.
type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
