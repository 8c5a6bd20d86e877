package messaging

import (
	"context"

	"github.com/google/uuid"
)

type MessagingUsecase interface {
	// Compose sends one message per recipient; all of them share a single
	// freshly created conversation.
	Compose(ctx context.Context, cmd ComposeCommand) ([]*MessageDTO, error)

	// Reply answers an existing message inside its conversation. Only a
	// participant of the parent may reply.
	Reply(ctx context.Context, cmd ReplyCommand) (*MessageDTO, error)

	Inbox(ctx context.Context, userID uuid.UUID) ([]*MessageDTO, error)
	Outbox(ctx context.Context, userID uuid.UUID) ([]*MessageDTO, error)
	Trash(ctx context.Context, userID uuid.UUID) ([]*MessageDTO, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	Conversation(ctx context.Context, userID, conversationID uuid.UUID) ([]*MessageDTO, error)
	ConversationHeads(ctx context.Context, userID uuid.UUID) ([]*ConversationHeadDTO, error)
	ConversationsTrash(ctx context.Context, userID uuid.UUID) ([]*ConversationHeadDTO, error)

	DeleteConversation(ctx context.Context, userID, conversationID uuid.UUID) error
	UndeleteConversation(ctx context.Context, userID, conversationID uuid.UUID) error

	// DeleteMessage and UndeleteMessage trash and restore a single message
	// for the acting user only; the other participant's view is untouched.
	DeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error
	UndeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error

	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error
}
