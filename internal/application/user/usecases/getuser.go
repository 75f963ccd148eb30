package usecases

import (
	"context"
	"fmt"

	"github.com/doramashorts/backend/internal/domain/user"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, apperrors.NewServiceUnavailableError("user store unavailable")
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return ToUserDTO(u), nil
}

// GetEmail resolves the address used in admin notifications and payment
// instructions.
func (uc *GetUserUseCase) GetEmail(ctx context.Context, userID uint) (string, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	if u == nil {
		return "", user.ErrUserNotFound
	}
	return u.Email().String(), nil
}
