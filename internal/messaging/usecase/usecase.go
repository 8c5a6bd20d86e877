package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"courier/config"
	"courier/internal/messaging"
	"courier/internal/messaging/model"
	"courier/internal/messaging/repository"
	"courier/pkg/errors"
	"courier/pkg/logger"
	"courier/pkg/utils"

	"github.com/google/uuid"
)

const maxSubjectLen = 120

type MessagingUsecase struct {
	repo     messaging.MessageRepository
	notifier messaging.Notifier
	logger   logger.Logger
	config   config.Config
}

// NewMessagingUsecase wires the core. notifier may be nil, in which case no
// notifications are sent.
func NewMessagingUsecase(repo messaging.MessageRepository, notifier messaging.Notifier, logger logger.Logger, config config.Config) *MessagingUsecase {
	return &MessagingUsecase{repo: repo, notifier: notifier, logger: logger, config: config}
}

func (uc *MessagingUsecase) Compose(ctx context.Context, cmd messaging.ComposeCommand) ([]*messaging.MessageDTO, error) {
	subject := strings.TrimSpace(cmd.Subject)

	if cmd.SenderID == uuid.Nil {
		return nil, errors.ErrSenderRequired
	}
	if len(cmd.RecipientIDs) == 0 {
		return nil, errors.ErrRecipientRequired
	}
	if subject == "" {
		return nil, errors.ErrSubjectRequired
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		return nil, errors.ErrSubjectTooLong
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.ErrBodyRequired
	}
	for _, recipientID := range cmd.RecipientIDs {
		if recipientID == uuid.Nil {
			return nil, errors.ErrRecipientRequired
		}
	}

	// One message per distinct recipient, all pinned to the conversation the
	// first send created.
	var conversationID uuid.UUID
	seen := make(map[uuid.UUID]bool, len(cmd.RecipientIDs))
	created := make([]*model.Message, 0, len(cmd.RecipientIDs))

	for _, recipientID := range cmd.RecipientIDs {
		if seen[recipientID] {
			continue
		}
		seen[recipientID] = true

		recipientID := recipientID
		msg := &model.Message{
			ConversationID: conversationID,
			SenderID:       cmd.SenderID,
			RecipientID:    &recipientID,
			Subject:        subject,
			Body:           cmd.Body,
		}
		if err := uc.repo.CreateMessage(ctx, msg); err != nil {
			uc.logger.Error("failed to create message", "sender_id", cmd.SenderID, "err", err)
			return nil, errors.ErrComposeFailed(err)
		}
		conversationID = msg.ConversationID
		created = append(created, msg)
	}

	dtos := make([]*messaging.MessageDTO, 0, len(created))
	for _, msg := range created {
		uc.notify(ctx, msg)
		dtos = append(dtos, toMessageDTO(msg))
	}
	return dtos, nil
}

func (uc *MessagingUsecase) Reply(ctx context.Context, cmd messaging.ReplyCommand) (*messaging.MessageDTO, error) {
	if cmd.SenderID == uuid.Nil {
		return nil, errors.ErrSenderRequired
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.ErrBodyRequired
	}

	parent, err := uc.repo.GetMessageByID(ctx, cmd.ParentID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		uc.logger.Error("failed to load parent message", "parent_id", cmd.ParentID, "err", err)
		return nil, errors.Internal("failed to load parent message")
	}

	recipientID, err := replyRecipient(parent, cmd.SenderID)
	if err != nil {
		return nil, err
	}

	body := cmd.Body
	if cmd.QuoteParent {
		body = body + "\n\n" + utils.FormatQuote(senderName(parent), parent.Body)
	}

	msg := &model.Message{
		SenderID:    cmd.SenderID,
		RecipientID: recipientID,
		ParentID:    &parent.ID,
		Subject:     utils.FormatSubject(parent.Subject),
		Body:        body,
	}
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to create reply", "parent_id", parent.ID, "err", err)
		return nil, errors.ErrComposeFailed(err)
	}

	if err := uc.repo.MarkMessageReplied(ctx, parent.ID); err != nil {
		// the reply itself is committed; a missing receipt is not worth failing over
		uc.logger.Warn("failed to stamp replied_at on parent", "parent_id", parent.ID, "err", err)
	}

	uc.notify(ctx, msg)
	return toMessageDTO(msg), nil
}

// replyRecipient resolves the other party of the parent message and rejects
// senders that weren't part of it.
func replyRecipient(parent *model.Message, senderID uuid.UUID) (*uuid.UUID, error) {
	switch {
	case parent.SenderID == senderID:
		if parent.RecipientID == nil {
			return nil, errors.ErrRecipientRequired
		}
		return parent.RecipientID, nil
	case parent.RecipientID != nil && *parent.RecipientID == senderID:
		originalSender := parent.SenderID
		return &originalSender, nil
	default:
		return nil, errors.ErrNotParticipant
	}
}

func senderName(msg *model.Message) string {
	if msg.Sender != nil {
		return msg.Sender.Username
	}
	return msg.SenderID.String()
}

func (uc *MessagingUsecase) Inbox(ctx context.Context, userID uuid.UUID) ([]*messaging.MessageDTO, error) {
	msgs, err := uc.repo.InboxFor(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load inbox", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load inbox")
	}
	return toMessageDTOs(msgs), nil
}

func (uc *MessagingUsecase) Outbox(ctx context.Context, userID uuid.UUID) ([]*messaging.MessageDTO, error) {
	msgs, err := uc.repo.OutboxFor(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load outbox", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load outbox")
	}
	return toMessageDTOs(msgs), nil
}

func (uc *MessagingUsecase) Trash(ctx context.Context, userID uuid.UUID) ([]*messaging.MessageDTO, error) {
	msgs, err := uc.repo.TrashFor(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load trash", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load trash")
	}
	return toMessageDTOs(msgs), nil
}

func (uc *MessagingUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := uc.repo.InboxCountFor(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "user_id", userID, "err", err)
		return 0, errors.Internal("failed to count unread messages")
	}
	return count, nil
}

func (uc *MessagingUsecase) Conversation(ctx context.Context, userID, conversationID uuid.UUID) ([]*messaging.MessageDTO, error) {
	msgs, err := uc.repo.UsersConversation(ctx, userID, conversationID)
	if err != nil {
		uc.logger.Error("failed to load conversation", "conversation_id", conversationID, "err", err)
		return nil, errors.Internal("failed to load conversation")
	}
	return toMessageDTOs(msgs), nil
}

func (uc *MessagingUsecase) ConversationHeads(ctx context.Context, userID uuid.UUID) ([]*messaging.ConversationHeadDTO, error) {
	heads, err := uc.repo.ConversationHeadsFor(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load conversation heads", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load conversation heads")
	}
	return toHeadDTOs(heads), nil
}

func (uc *MessagingUsecase) ConversationsTrash(ctx context.Context, userID uuid.UUID) ([]*messaging.ConversationHeadDTO, error) {
	heads, err := uc.repo.ConversationsTrashFor(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load conversation trash", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load conversation trash")
	}
	return toHeadDTOs(heads), nil
}

func (uc *MessagingUsecase) DeleteConversation(ctx context.Context, userID, conversationID uuid.UUID) error {
	head, err := uc.repo.GetConversationHead(ctx, userID, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrHeadNotFound) {
			return errors.ErrConversationNotFound
		}
		uc.logger.Error("failed to load conversation head", "conversation_id", conversationID, "err", err)
		return errors.Internal("failed to load conversation head")
	}

	if err := uc.repo.MarkConversationDeleted(ctx, head); err != nil {
		uc.logger.Error("failed to trash conversation", "conversation_id", conversationID, "err", err)
		return errors.ErrTrashFailed(err)
	}
	return nil
}

func (uc *MessagingUsecase) UndeleteConversation(ctx context.Context, userID, conversationID uuid.UUID) error {
	head, err := uc.repo.GetConversationHead(ctx, userID, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrHeadNotFound) {
			return errors.ErrConversationNotFound
		}
		uc.logger.Error("failed to load conversation head", "conversation_id", conversationID, "err", err)
		return errors.Internal("failed to load conversation head")
	}

	if err := uc.repo.MarkConversationUndeleted(ctx, head); err != nil {
		uc.logger.Error("failed to restore conversation", "conversation_id", conversationID, "err", err)
		return errors.ErrTrashFailed(err)
	}
	return nil
}

func (uc *MessagingUsecase) DeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error {
	if err := uc.requireParticipant(ctx, userID, messageID); err != nil {
		return err
	}
	if err := uc.repo.MarkMessageDeleted(ctx, messageID, userID); err != nil {
		uc.logger.Error("failed to trash message", "message_id", messageID, "err", err)
		return errors.ErrTrashFailed(err)
	}
	return nil
}

func (uc *MessagingUsecase) UndeleteMessage(ctx context.Context, userID, messageID uuid.UUID) error {
	if err := uc.requireParticipant(ctx, userID, messageID); err != nil {
		return err
	}
	if err := uc.repo.MarkMessageUndeleted(ctx, messageID, userID); err != nil {
		uc.logger.Error("failed to restore message", "message_id", messageID, "err", err)
		return errors.ErrTrashFailed(err)
	}
	return nil
}

func (uc *MessagingUsecase) requireParticipant(ctx context.Context, userID, messageID uuid.UUID) error {
	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		uc.logger.Error("failed to load message", "message_id", messageID, "err", err)
		return errors.Internal("failed to load message")
	}
	if msg.SenderID != userID && (msg.RecipientID == nil || *msg.RecipientID != userID) {
		return errors.ErrNotParticipant
	}
	return nil
}

func (uc *MessagingUsecase) MarkRead(ctx context.Context, userID, messageID uuid.UUID) error {
	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		uc.logger.Error("failed to load message", "message_id", messageID, "err", err)
		return errors.Internal("failed to load message")
	}
	if msg.RecipientID == nil || *msg.RecipientID != userID {
		return errors.ErrNotRecipient
	}

	if err := uc.repo.MarkMessageRead(ctx, messageID); err != nil {
		uc.logger.Error("failed to mark message read", "message_id", messageID, "err", err)
		return errors.Internal("failed to mark message read")
	}
	return nil
}

func (uc *MessagingUsecase) notify(ctx context.Context, msg *model.Message) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NewMessage(ctx, msg); err != nil {
		uc.logger.Warn("new message notification failed", "message_id", msg.ID, "err", err)
	}
}

func toMessageDTO(m *model.Message) *messaging.MessageDTO {
	return &messaging.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		RecipientID:    m.RecipientID,
		ParentID:       m.ParentID,
		Subject:        m.Subject,
		Body:           m.Body,
		SentAt:         m.SentAt,
		ReadAt:         m.ReadAt,
		RepliedAt:      m.RepliedAt,
	}
}

func toMessageDTOs(msgs []model.Message) []*messaging.MessageDTO {
	dtos := make([]*messaging.MessageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, toMessageDTO(&msgs[i]))
	}
	return dtos
}

func toHeadDTOs(heads []model.ConversationHead) []*messaging.ConversationHeadDTO {
	dtos := make([]*messaging.ConversationHeadDTO, 0, len(heads))
	for i := range heads {
		h := &heads[i]
		dto := &messaging.ConversationHeadDTO{
			ID:              h.ID,
			ConversationID:  h.ConversationID,
			UserID:          h.UserID,
			MarkedAsDeleted: h.MarkedAsDeleted,
		}
		if h.LatestMessage != nil {
			dto.LatestMessage = toMessageDTO(h.LatestMessage)
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
