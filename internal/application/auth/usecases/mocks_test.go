package usecases

import (
	"context"
	"errors"
	"time"

	"campushub/internal/domain/auth"
	"campushub/internal/shared/logger"
)

type mockVerifier struct {
	// Accept maps password hash to the plaintext it matches.
	Accept map[string]string
}

func (m *mockVerifier) Compare(hashedPassword, password string) error {
	if plain, ok := m.Accept[hashedPassword]; ok && plain == password {
		return nil
	}
	return errors.New("password mismatch")
}

type mockTokenIssuer struct {
	IssueFunc func(identity *auth.Identity) (string, time.Time, error)
}

func (m *mockTokenIssuer) Issue(identity *auth.Identity) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(identity)
	}
	return "token-" + identity.Username(), time.Now().Add(time.Hour), nil
}

type mockRememberedRepo struct {
	PutFunc   func(ctx context.Context, deviceKey string, login auth.RememberedLogin) error
	GetFunc   func(ctx context.Context, deviceKey string) (*auth.RememberedLogin, error)
	ClearFunc func(ctx context.Context, deviceKey string) error
}

func (m *mockRememberedRepo) Put(ctx context.Context, deviceKey string, login auth.RememberedLogin) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, deviceKey, login)
	}
	return nil
}

func (m *mockRememberedRepo) Get(ctx context.Context, deviceKey string) (*auth.RememberedLogin, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, deviceKey)
	}
	return nil, nil
}

func (m *mockRememberedRepo) Clear(ctx context.Context, deviceKey string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, deviceKey)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
