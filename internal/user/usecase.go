package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register a new user with username + display name + notification email
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Update display name only (username is immutable)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error

	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfileDTO, error)
	GetUserProfileByUsername(ctx context.Context, username string) (*UserProfileDTO, error)
}
