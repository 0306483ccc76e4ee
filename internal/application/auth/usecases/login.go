package usecases

import (
	"context"
	"time"

	"campushub/internal/domain/auth"
	"campushub/internal/shared/authorization"
	"campushub/internal/shared/config"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

const minPasswordLen = 6

type LoginCommand struct {
	Role       string
	Username   string
	Password   string
	RememberMe bool
	// DeviceKey identifies the browser asking for the remember-me hint.
	DeviceKey string
}

type LoginResult struct {
	Token       string
	ExpiresAt   time.Time
	Username    string
	Role        string
	DisplayName string
}

// LoginUseCase is the portal's demo login gate. Wardens are checked against
// the static credential table; students are admitted on username format
// alone. The gate mimics the latency of a real round trip but is explicitly
// not a security boundary.
type LoginUseCase struct {
	credentials  []config.CredentialConfig
	verifier     PasswordVerifier
	tokens       TokenIssuer
	rememberRepo auth.RememberedLoginRepository
	loginDelay   time.Duration
	logger       logger.Interface
}

func NewLoginUseCase(
	credentials []config.CredentialConfig,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	rememberRepo auth.RememberedLoginRepository,
	loginDelay time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		credentials:  credentials,
		verifier:     verifier,
		tokens:       tokens,
		rememberRepo: rememberRepo,
		loginDelay:   loginDelay,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	// Simulated processing delay, kept from the original flow so the UI's
	// loading state stays visible.
	if uc.loginDelay > 0 {
		select {
		case <-time.After(uc.loginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	identity, err := uc.authenticate(cmd)
	if err != nil {
		uc.logger.Warnw("login rejected", "username", cmd.Username, "role", cmd.Role, "error", err)
		return nil, err
	}

	if err := uc.updateRememberedLogin(ctx, cmd, identity); err != nil {
		// A remember-me hiccup never blocks the login itself.
		uc.logger.Warnw("failed to update remembered login", "username", cmd.Username, "error", err)
	}

	token, expiresAt, err := uc.tokens.Issue(identity)
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue session token")
	}

	uc.logger.Infow("login succeeded", "username", identity.Username(), "role", identity.Role())

	return &LoginResult{
		Token:       token,
		ExpiresAt:   expiresAt,
		Username:    identity.Username(),
		Role:        identity.Role().String(),
		DisplayName: identity.DisplayName(),
	}, nil
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	if _, err := authorization.ParseUserRole(cmd.Role); err != nil {
		return errors.NewValidationError("Please select your role")
	}
	if cmd.Username == "" {
		return errors.NewValidationError("Please enter your username")
	}
	if cmd.Password == "" {
		return errors.NewValidationError("Please enter your password")
	}
	if len(cmd.Password) < minPasswordLen {
		return errors.NewValidationError("Password must be at least 6 characters long")
	}
	return nil
}

func (uc *LoginUseCase) authenticate(cmd LoginCommand) (*auth.Identity, error) {
	role, _ := authorization.ParseUserRole(cmd.Role)

	if role.IsAdmin() {
		for _, cred := range uc.credentials {
			if cred.Username != cmd.Username || cred.Role != authorization.RoleAdmin.String() {
				continue
			}
			if err := uc.verifier.Compare(cred.PasswordHash, cmd.Password); err != nil {
				break
			}
			return auth.NewAdminIdentity(cred.Username, cred.DisplayName), nil
		}
		return nil, errors.NewUnauthorizedError("Invalid admin credentials")
	}

	return auth.NewStudentIdentity(cmd.Username)
}

func (uc *LoginUseCase) updateRememberedLogin(ctx context.Context, cmd LoginCommand, identity *auth.Identity) error {
	if uc.rememberRepo == nil || cmd.DeviceKey == "" {
		return nil
	}
	if !cmd.RememberMe {
		return uc.rememberRepo.Clear(ctx, cmd.DeviceKey)
	}
	return uc.rememberRepo.Put(ctx, cmd.DeviceKey, auth.RememberedLogin{
		Username:     identity.Username(),
		Role:         identity.Role().String(),
		RememberedAt: time.Now().UTC(),
	})
}
