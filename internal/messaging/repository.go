package messaging

import (
	"context"

	"github.com/google/uuid"

	"courier/internal/messaging/model"
)

type MessageRepository interface {
	// CreateMessage persists a new message, assigning it a conversation
	// (inherited from the parent for replies, freshly created otherwise)
	// and syncing the conversation heads of both participants, all in one
	// transaction.
	CreateMessage(ctx context.Context, msg *model.Message) error

	// SyncConversationHeads re-runs head synchronization for an already
	// persisted message (the explicit re-save path).
	SyncConversationHeads(ctx context.Context, msg *model.Message) error

	GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error)

	// Mailboxes, all ordered most-recent-first by sent_at.
	InboxFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	OutboxFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	TrashFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	InboxCountFor(ctx context.Context, userID uuid.UUID) (int, error)

	// Conversation views.
	ConversationFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	UsersConversation(ctx context.Context, userID, conversationID uuid.UUID) ([]model.Message, error)
	ConversationHeadsFor(ctx context.Context, userID uuid.UUID) ([]model.ConversationHead, error)
	ConversationsTrashFor(ctx context.Context, userID uuid.UUID) ([]model.ConversationHead, error)
	GetConversationHead(ctx context.Context, userID, conversationID uuid.UUID) (*model.ConversationHead, error)

	// Per-user soft delete over a whole conversation, atomically.
	MarkConversationDeleted(ctx context.Context, head *model.ConversationHead) error
	MarkConversationUndeleted(ctx context.Context, head *model.ConversationHead) error

	// Per-user soft delete of a single message. Only the acting user's side
	// of the message is stamped or cleared.
	MarkMessageDeleted(ctx context.Context, messageID, userID uuid.UUID) error
	MarkMessageUndeleted(ctx context.Context, messageID, userID uuid.UUID) error

	// Read/reply receipts; both keep the first timestamp on repeat calls.
	MarkMessageRead(ctx context.Context, messageID uuid.UUID) error
	MarkMessageReplied(ctx context.Context, messageID uuid.UUID) error
}
