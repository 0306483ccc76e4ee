package usecases

import (
	"context"

	"campushub/internal/domain/complaint"
	"campushub/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc          func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc        func(ctx context.Context, c *complaint.Complaint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*complaint.Complaint, error)
	ListFunc          func(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, error)
	CountByStatusFunc func(ctx context.Context) (*complaint.StatusCounts, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockComplaintRepository) CountByStatus(ctx context.Context) (*complaint.StatusCounts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return &complaint.StatusCounts{}, nil
}

type mockCommentRepository struct {
	SaveFunc              func(ctx context.Context, comment *complaint.Comment) error
	FindByComplaintIDFunc func(ctx context.Context, complaintID uint) ([]*complaint.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *complaint.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) FindByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Comment, error) {
	if m.FindByComplaintIDFunc != nil {
		return m.FindByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

// mockTransactor runs the function directly without a database.
type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
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
