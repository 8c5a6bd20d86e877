package user

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Username    string
	DisplayName string
	Email       string
}

// Output DTOs
type UserDTO struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Email       string
}

type UserProfileDTO struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
}
