package messaging

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type ComposeCommand struct {
	SenderID     uuid.UUID
	RecipientIDs []uuid.UUID
	Subject      string
	Body         string
}

type ReplyCommand struct {
	SenderID uuid.UUID
	ParentID uuid.UUID
	Body     string

	// QuoteParent prepends the parent's body as a quoted block.
	QuoteParent bool
}

// Output DTOs
type MessageDTO struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	RecipientID    *uuid.UUID
	ParentID       *uuid.UUID
	Subject        string
	Body           string
	SentAt         time.Time
	ReadAt         *time.Time
	RepliedAt      *time.Time
}

type ConversationHeadDTO struct {
	ID              uuid.UUID
	ConversationID  uuid.UUID
	UserID          uuid.UUID
	MarkedAsDeleted bool
	LatestMessage   *MessageDTO
}
