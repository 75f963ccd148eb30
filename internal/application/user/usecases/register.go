package usecases

import (
	"context"
	"errors"

	"github.com/doramashorts/backend/internal/domain/user"
	vo "github.com/doramashorts/backend/internal/domain/user/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to register")
	}

	u, err := user.NewUser(email, cmd.Name, hash, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperrors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, apperrors.NewServiceUnavailableError("user store unavailable")
	}

	token, err := uc.tokens.Issue(u.ID(), email.String(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token after register", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return newAuthResult(u, token), nil
}
