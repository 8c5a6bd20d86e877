package notify

import (
	"context"
	"fmt"

	"courier/internal/messaging/model"
	"courier/internal/user"
	"courier/pkg/logger"
	"courier/pkg/mailer"
)

// EmailNotifier implements messaging.Notifier by mailing the recipient of
// every new message. It is wired in by the caller; the messaging core only
// sees the interface.
type EmailNotifier struct {
	users  user.UserRepository
	mailer *mailer.Mailer
	logger logger.Logger
}

func NewEmailNotifier(users user.UserRepository, mailer *mailer.Mailer, logger logger.Logger) *EmailNotifier {
	return &EmailNotifier{users: users, mailer: mailer, logger: logger}
}

func (n *EmailNotifier) NewMessage(ctx context.Context, msg *model.Message) error {
	if msg.RecipientID == nil {
		return nil
	}

	recipient, err := n.users.GetUserByID(ctx, *msg.RecipientID)
	if err != nil {
		return fmt.Errorf("notify: load recipient: %w", err)
	}

	from := msg.SenderID.String()
	if msg.Sender != nil {
		from = msg.Sender.Username
	} else if sender, err := n.users.GetUserByID(ctx, msg.SenderID); err == nil {
		from = sender.Username
	}

	subject := fmt.Sprintf("New message: %s", msg.Subject)
	body := fmt.Sprintf("You have received a new private message from %s.\n\nSubject: %s\n\n%s\n",
		from, msg.Subject, msg.Body)

	if err := n.mailer.Send(recipient.Email, subject, body); err != nil {
		return fmt.Errorf("notify: send mail: %w", err)
	}

	n.logger.Debug("new message notification sent", "message_id", msg.ID, "to", recipient.Email)
	return nil
}
