package model

import (
	"github.com/google/uuid"
	user "courier/internal/user/model"
)

// ConversationHead is one user's view of one conversation: a pointer to the
// most recent message plus that user's deletion flag for the whole thread.
// It is a materialized index over message history, re-derivable from the
// messages table, and there is at most one per (user, conversation).
type ConversationHead struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	LatestMessageID uuid.UUID `bun:",notnull,type:uuid"`
	LatestMessage   *Message  `bun:"rel:belongs-to,join:latest_message_id=id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid,unique:user_conversation"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid,unique:user_conversation"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	// Cleared whenever a new message arrives in the conversation.
	MarkedAsDeleted bool `bun:",notnull,default:false"`
}
