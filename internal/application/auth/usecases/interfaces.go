package usecases

import (
	"context"
	"time"

	"campushub/internal/domain/auth"
)

// TokenIssuer mints the session token returned on login.
type TokenIssuer interface {
	Issue(identity *auth.Identity) (token string, expiresAt time.Time, err error)
}

// PasswordVerifier compares a stored hash with a presented password.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetRememberedLoginExecutor interface {
	Execute(ctx context.Context, query GetRememberedLoginQuery) (*GetRememberedLoginResult, error)
}
