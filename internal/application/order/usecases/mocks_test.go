package usecases

import (
	"context"
	"fmt"

	"campushub/internal/domain/menu"
	"campushub/internal/domain/order"
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

type mockOrderRepository struct {
	SavePendingFunc     func(ctx context.Context, o *order.Order) error
	FindPendingFunc     func(ctx context.Context, studentUsername string) (*order.Order, error)
	DeletePendingFunc   func(ctx context.Context, studentUsername string) error
	AppendCompletedFunc func(ctx context.Context, o *order.Order) error
	ListCompletedFunc   func(ctx context.Context, studentUsername string) ([]*order.Order, error)
}

func (m *mockOrderRepository) SavePending(ctx context.Context, o *order.Order) error {
	if m.SavePendingFunc != nil {
		return m.SavePendingFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) FindPending(ctx context.Context, studentUsername string) (*order.Order, error) {
	if m.FindPendingFunc != nil {
		return m.FindPendingFunc(ctx, studentUsername)
	}
	return nil, nil
}

func (m *mockOrderRepository) DeletePending(ctx context.Context, studentUsername string) error {
	if m.DeletePendingFunc != nil {
		return m.DeletePendingFunc(ctx, studentUsername)
	}
	return nil
}

func (m *mockOrderRepository) AppendCompleted(ctx context.Context, o *order.Order) error {
	if m.AppendCompletedFunc != nil {
		return m.AppendCompletedFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) ListCompleted(ctx context.Context, studentUsername string) ([]*order.Order, error) {
	if m.ListCompletedFunc != nil {
		return m.ListCompletedFunc(ctx, studentUsername)
	}
	return nil, nil
}

type mockUPIBuilder struct{}

func (m *mockUPIBuilder) Intent(orderNumber string, amount float64) string {
	return fmt.Sprintf("upi://pay?am=%.2f&tn=%s", amount, orderNumber)
}

type mockNotifier struct {
	SendFunc func(ctx context.Context, recipient, message string) error
}

func (m *mockNotifier) SendOrderConfirmation(ctx context.Context, recipient, message string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, recipient, message)
	}
	return nil
}

type mockTransactor struct{}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
