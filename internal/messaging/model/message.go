package model

import (
	"time"

	"github.com/google/uuid"
	user "courier/internal/user/model"
)

// Message is the durable record of a private message. Deletion state lives
// in the two *_deleted_at columns, one per side, so each participant can
// trash a message without touching the other's view.
type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	RecipientID *uuid.UUID `bun:",type:uuid"`
	Recipient   *user.User `bun:"rel:belongs-to,join:recipient_id=id"`

	// Parent forms the reply chain; replies inherit the parent's conversation.
	ParentID *uuid.UUID `bun:",type:uuid"`
	Parent   *Message   `bun:"rel:belongs-to,join:parent_id=id"`

	Subject string `bun:",notnull"`
	Body    string `bun:",notnull"`

	SentAt             time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	ReadAt             *time.Time `bun:",nullzero"`
	RepliedAt          *time.Time `bun:",nullzero"`
	SenderDeletedAt    *time.Time `bun:",nullzero"`
	RecipientDeletedAt *time.Time `bun:",nullzero"`
}

// Unread reports whether the recipient has read the message yet.
func (m *Message) Unread() bool {
	return m.ReadAt == nil
}

// Replied reports whether the recipient has written a reply to this message.
func (m *Message) Replied() bool {
	return m.RepliedAt != nil
}
