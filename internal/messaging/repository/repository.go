package repository

import (
	"context"
	"database/sql"
	"time"

	"courier/internal/messaging/model"
	"courier/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrParentNotFound  = errors.New("parent message not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrHeadNotFound    = errors.New("conversation head not found")
)

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

// CreateMessage inserts the message together with its conversation
// assignment and the head sync for both participants. The whole thing runs
// in one transaction so a reader can never observe a message without a
// conversation, or with a half-applied head update.
func (r *MessageRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if msg.SentAt.IsZero() {
			msg.SentAt = time.Now()
		}

		if msg.ConversationID != uuid.Nil {
			// caller pinned the conversation (fan-out after the first send)
		} else if msg.ParentID != nil {
			parent := new(model.Message)
			err := tx.NewSelect().Model(parent).Where("id = ?", *msg.ParentID).Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrParentNotFound
				}
				return errors.Wrap(err, "messagingRepo.CreateMessage.SelectParent: ")
			}
			msg.ConversationID = parent.ConversationID
		} else {
			conversation := new(model.Conversation)
			_, err := tx.NewInsert().Model(conversation).Returning("*").Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "messagingRepo.CreateMessage.InsertConversation: ")
			}
			msg.ConversationID = conversation.ID
		}

		_, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.CreateMessage.InsertMessage: ")
		}

		return syncHeads(ctx, tx, msg)
	})
}

// SyncConversationHeads repoints both participants' heads at an already
// persisted message (the explicit re-save path).
func (r *MessageRepository) SyncConversationHeads(ctx context.Context, msg *model.Message) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return syncHeads(ctx, tx, msg)
	})
}

// syncHeads upserts one head per distinct participant. The ON CONFLICT
// clause resolves the first-touch race in the store: when two transactions
// create the head for the same (user, conversation) pair concurrently, the
// loser's insert degrades to the update, so the uniqueness invariant holds
// without surfacing an error.
func syncHeads(ctx context.Context, tx bun.Tx, msg *model.Message) error {
	participants := []uuid.UUID{msg.SenderID}
	if msg.RecipientID != nil && *msg.RecipientID != msg.SenderID {
		participants = append(participants, *msg.RecipientID)
	}

	for _, userID := range participants {
		head := &model.ConversationHead{
			LatestMessageID: msg.ID,
			UserID:          userID,
			ConversationID:  msg.ConversationID,
			MarkedAsDeleted: false,
		}
		_, err := tx.NewInsert().
			Model(head).
			On("CONFLICT (user_id, conversation_id) DO UPDATE").
			Set("latest_message_id = EXCLUDED.latest_message_id").
			Set("marked_as_deleted = FALSE").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.syncHeads.UpsertHead: ")
		}
	}
	return nil
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		Relation("Sender").
		Where("message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messagingRepo.GetMessageByID.Scan: ")
	}
	return msg, nil
}

// InboxFor returns all messages received by the user and not trashed on the
// recipient side.
func (r *MessageRepository) InboxFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("recipient_id = ?", userID).
		Where("recipient_deleted_at IS NULL").
		OrderExpr("sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.InboxFor.Scan: ")
	}
	return msgs, nil
}

// OutboxFor returns all messages sent by the user and not trashed on the
// sender side.
func (r *MessageRepository) OutboxFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("sender_id = ?", userID).
		Where("sender_deleted_at IS NULL").
		OrderExpr("sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.OutboxFor.Scan: ")
	}
	return msgs, nil
}

// TrashFor returns all messages the user has trashed on their own side,
// whether they sent or received them.
func (r *MessageRepository) TrashFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("(recipient_id = ? AND recipient_deleted_at IS NOT NULL) OR (sender_id = ? AND sender_deleted_at IS NOT NULL)",
			userID, userID).
		OrderExpr("sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.TrashFor.Scan: ")
	}
	return msgs, nil
}

// InboxCountFor counts unread, untrashed received messages without marking
// them seen.
func (r *MessageRepository) InboxCountFor(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.Message)(nil)).
		Where("recipient_id = ?", userID).
		Where("read_at IS NULL").
		Where("recipient_deleted_at IS NULL").
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "messagingRepo.InboxCountFor.Count: ")
	}
	return count, nil
}

// ConversationFor returns the messages of every conversation the user has a
// live (not trashed) head for.
func (r *MessageRepository) ConversationFor(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Join("JOIN conversation_heads AS ch ON ch.conversation_id = message.conversation_id").
		Where("ch.user_id = ?", userID).
		Where("ch.marked_as_deleted = FALSE").
		OrderExpr("message.sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.ConversationFor.Scan: ")
	}
	return msgs, nil
}

// UsersConversation returns one conversation's messages as seen by one user,
// i.e. only messages they sent or received.
func (r *MessageRepository) UsersConversation(ctx context.Context, userID, conversationID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		OrderExpr("sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.UsersConversation.Scan: ")
	}
	return msgs, nil
}

// ConversationHeadsFor is the canonical list of the user's active threads,
// newest activity first.
func (r *MessageRepository) ConversationHeadsFor(ctx context.Context, userID uuid.UUID) ([]model.ConversationHead, error) {
	var heads []model.ConversationHead
	err := r.db.NewSelect().
		Model(&heads).
		Relation("LatestMessage").
		Where("conversation_head.user_id = ?", userID).
		Where("conversation_head.marked_as_deleted = FALSE").
		OrderExpr("latest_message.sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.ConversationHeadsFor.Scan: ")
	}
	return heads, nil
}

func (r *MessageRepository) ConversationsTrashFor(ctx context.Context, userID uuid.UUID) ([]model.ConversationHead, error) {
	var heads []model.ConversationHead
	err := r.db.NewSelect().
		Model(&heads).
		Relation("LatestMessage").
		Where("conversation_head.user_id = ?", userID).
		Where("conversation_head.marked_as_deleted = TRUE").
		OrderExpr("latest_message.sent_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.ConversationsTrashFor.Scan: ")
	}
	return heads, nil
}

func (r *MessageRepository) GetConversationHead(ctx context.Context, userID, conversationID uuid.UUID) (*model.ConversationHead, error) {
	head := new(model.ConversationHead)
	err := r.db.NewSelect().
		Model(head).
		Where("user_id = ?", userID).
		Where("conversation_id = ?", conversationID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHeadNotFound
		}
		return nil, errors.Wrap(err, "messagingRepo.GetConversationHead.Scan: ")
	}
	return head, nil
}

// MarkConversationDeleted trashes the whole conversation for the head's
// user: every message where they are sender gets sender_deleted_at stamped
// (keeping an already-set timestamp), symmetrically for recipient, and the
// head flag flips. One transaction, the other participant untouched.
func (r *MessageRepository) MarkConversationDeleted(ctx context.Context, head *model.ConversationHead) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		_, err := tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("sender_deleted_at = COALESCE(sender_deleted_at, ?)", now).
			Where("conversation_id = ?", head.ConversationID).
			Where("sender_id = ?", head.UserID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkConversationDeleted.UpdateSenderSide: ")
		}

		_, err = tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("recipient_deleted_at = COALESCE(recipient_deleted_at, ?)", now).
			Where("conversation_id = ?", head.ConversationID).
			Where("recipient_id = ?", head.UserID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkConversationDeleted.UpdateRecipientSide: ")
		}

		_, err = tx.NewUpdate().
			Model((*model.ConversationHead)(nil)).
			Set("marked_as_deleted = TRUE").
			Where("id = ?", head.ID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkConversationDeleted.UpdateHead: ")
		}
		return nil
	})
	if err != nil {
		return err
	}

	head.MarkedAsDeleted = true
	return nil
}

// MarkConversationUndeleted is the mirror operation: clearing a NULL is a
// no-op, so no idempotence guard is needed on this side.
func (r *MessageRepository) MarkConversationUndeleted(ctx context.Context, head *model.ConversationHead) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("sender_deleted_at = NULL").
			Where("conversation_id = ?", head.ConversationID).
			Where("sender_id = ?", head.UserID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkConversationUndeleted.UpdateSenderSide: ")
		}

		_, err = tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("recipient_deleted_at = NULL").
			Where("conversation_id = ?", head.ConversationID).
			Where("recipient_id = ?", head.UserID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkConversationUndeleted.UpdateRecipientSide: ")
		}

		_, err = tx.NewUpdate().
			Model((*model.ConversationHead)(nil)).
			Set("marked_as_deleted = FALSE").
			Where("id = ?", head.ID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkConversationUndeleted.UpdateHead: ")
		}
		return nil
	})
	if err != nil {
		return err
	}

	head.MarkedAsDeleted = false
	return nil
}

// MarkMessageDeleted trashes a single message on the acting user's side:
// sender_deleted_at if they sent it, recipient_deleted_at if they received
// it (both for a self-message). An already-set timestamp is kept.
func (r *MessageRepository) MarkMessageDeleted(ctx context.Context, messageID, userID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		_, err := tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("sender_deleted_at = COALESCE(sender_deleted_at, ?)", now).
			Where("id = ?", messageID).
			Where("sender_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkMessageDeleted.UpdateSenderSide: ")
		}

		_, err = tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("recipient_deleted_at = COALESCE(recipient_deleted_at, ?)", now).
			Where("id = ?", messageID).
			Where("recipient_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkMessageDeleted.UpdateRecipientSide: ")
		}
		return nil
	})
}

// MarkMessageUndeleted clears the acting user's deletion timestamp on one
// message.
func (r *MessageRepository) MarkMessageUndeleted(ctx context.Context, messageID, userID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("sender_deleted_at = NULL").
			Where("id = ?", messageID).
			Where("sender_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkMessageUndeleted.UpdateSenderSide: ")
		}

		_, err = tx.NewUpdate().
			Model((*model.Message)(nil)).
			Set("recipient_deleted_at = NULL").
			Where("id = ?", messageID).
			Where("recipient_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.MarkMessageUndeleted.UpdateRecipientSide: ")
		}
		return nil
	})
}

// MarkMessageRead stamps read_at once; repeat calls keep the first timestamp.
func (r *MessageRepository) MarkMessageRead(ctx context.Context, messageID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("read_at = COALESCE(read_at, ?)", time.Now()).
		Where("id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messagingRepo.MarkMessageRead.Update: ")
	}
	return nil
}

// MarkMessageReplied stamps replied_at once; repeat calls keep the first
// timestamp.
func (r *MessageRepository) MarkMessageReplied(ctx context.Context, messageID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("replied_at = COALESCE(replied_at, ?)", time.Now()).
		Where("id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messagingRepo.MarkMessageReplied.Update: ")
	}
	return nil
}
