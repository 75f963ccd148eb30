package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/domain/user"
	"github.com/doramashorts/backend/internal/shared/authorization"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type SetRoleResult struct {
	User    *UserDTO
	Changed bool
}

// SetRoleUseCase grants or revokes the admin role. The new role takes effect
// with the user's next token.
type SetRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetRoleUseCase(userRepo user.Repository, logger logger.Interface) *SetRoleUseCase {
	return &SetRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *SetRoleUseCase) Execute(ctx context.Context, email string, role authorization.UserRole) (*SetRoleResult, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("unknown role: " + role.String())
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewServiceUnavailableError("user store unavailable")
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found", email)
	}

	if !u.SetRole(role, biztime.NowUTC()) {
		return &SetRoleResult{User: ToUserDTO(u)}, nil
	}

	if err := uc.userRepo.UpdateRole(ctx, u.ID(), role); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", u.ID(), "role", role, "error", err)
		return nil, apperrors.NewServiceUnavailableError("user store unavailable")
	}

	uc.logger.Infow("user role changed", "user_id", u.ID(), "role", role)
	return &SetRoleResult{User: ToUserDTO(u), Changed: true}, nil
}
