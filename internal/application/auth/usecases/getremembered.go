package usecases

import (
	"context"

	"campushub/internal/domain/auth"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type GetRememberedLoginQuery struct {
	DeviceKey string
}

type GetRememberedLoginResult struct {
	// Remembered is false when the device never opted in.
	Remembered bool   `json:"remembered"`
	Username   string `json:"username,omitempty"`
	Role       string `json:"role,omitempty"`
}

type GetRememberedLoginUseCase struct {
	rememberRepo auth.RememberedLoginRepository
	logger       logger.Interface
}

func NewGetRememberedLoginUseCase(
	rememberRepo auth.RememberedLoginRepository,
	logger logger.Interface,
) *GetRememberedLoginUseCase {
	return &GetRememberedLoginUseCase{
		rememberRepo: rememberRepo,
		logger:       logger,
	}
}

func (uc *GetRememberedLoginUseCase) Execute(ctx context.Context, query GetRememberedLoginQuery) (*GetRememberedLoginResult, error) {
	if query.DeviceKey == "" {
		return &GetRememberedLoginResult{}, nil
	}

	login, err := uc.rememberRepo.Get(ctx, query.DeviceKey)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &GetRememberedLoginResult{}, nil
		}
		uc.logger.Errorw("failed to load remembered login", "error", err)
		return nil, errors.NewInternalError("failed to load remembered login")
	}

	return &GetRememberedLoginResult{
		Remembered: true,
		Username:   login.Username,
		Role:       login.Role,
	}, nil
}
