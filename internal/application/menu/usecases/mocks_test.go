package usecases

import (
	"context"

	"campushub/internal/domain/menu"
	"campushub/internal/shared/logger"
)

type mockItemRepository struct {
	SaveFunc     func(ctx context.Context, item *menu.Item) error
	FindByIDFunc func(ctx context.Context, id uint) (*menu.Item, error)
	ListFunc     func(ctx context.Context, filter menu.ItemFilter) ([]*menu.Item, error)
	DeleteFunc   func(ctx context.Context, id uint) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *mockItemRepository) Save(ctx context.Context, item *menu.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uint) (*menu.Item, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, filter menu.ItemFilter) ([]*menu.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockItemRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
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
