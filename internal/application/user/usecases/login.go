package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/domain/user"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewServiceUnavailableError("user store unavailable")
	}

	// Same answer for unknown address and wrong password.
	if u == nil {
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Debugw("password mismatch", "user_id", u.ID())
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	token, err := uc.tokens.Issue(u.ID(), u.Email().String(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	return newAuthResult(u, token), nil
}
