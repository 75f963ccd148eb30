package handlers

import (
	"context"

	"github.com/doramashorts/backend/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*usecases.UserDTO, error)
}
