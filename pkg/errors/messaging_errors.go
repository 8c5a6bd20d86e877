package errors

var (
	// Domain errors — used in usecase/repository
	ErrSenderRequired       = InvalidArg("sender is required")
	ErrRecipientRequired    = InvalidArg("at least one recipient is required")
	ErrSubjectRequired      = InvalidArg("subject cannot be empty")
	ErrSubjectTooLong       = InvalidArg("subject must be at most 120 characters")
	ErrBodyRequired         = InvalidArg("body cannot be empty")
	ErrMessageNotFound      = NotFound("message not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrNotParticipant       = Forbidden("user is not a participant of this conversation")
	ErrNotRecipient         = Forbidden("only the recipient can mark a message as read")
)

func ErrComposeFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrTrashFailed(cause error) error {
	return Wrap(CodeInternal, "failed to update conversation trash state", cause)
}
