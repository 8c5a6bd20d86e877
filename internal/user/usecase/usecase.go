package usecase

import (
	"context"
	"regexp"
	"strings"

	"courier/config"
	"courier/internal/user"
	models "courier/internal/user/model"
	"courier/pkg/errors"
	"courier/pkg/logger"

	"github.com/google/uuid"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if cmd.DisplayName == "" {
		return nil, errors.ErrInvalidDisplayName
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, errors.ErrInvalidEmail
	}

	if exists, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUsernameTaken
	}

	u := &models.User{
		Username: cmd.Username,
		Name:     cmd.DisplayName,
		Email:    cmd.Email,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return &user.UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		Email:       u.Email,
	}, nil
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	if newName == "" {
		return errors.ErrInvalidDisplayName
	}

	err := uc.repo.UpdateUserDisplayName(ctx, userID, newName)
	if err != nil {
		uc.logger.Errorf("error while updating display name in db: %v", err)
		return errors.Internal("error while updating display name in db")
	}
	return nil
}

func (uc *UserUsecase) GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return &user.UserProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
	}, nil
}

func (uc *UserUsecase) GetUserProfileByUsername(ctx context.Context, username string) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return &user.UserProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
	}, nil
}
