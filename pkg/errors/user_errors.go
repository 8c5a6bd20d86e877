package errors

var (
	ErrUsernameTaken      = AlreadyExists("username is already taken")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidUsername    = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrInvalidDisplayName = InvalidArg("display name cannot be empty")
	ErrInvalidEmail       = InvalidArg("a valid email address is required")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}
