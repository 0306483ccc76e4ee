package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain/complaint"
	vo "campushub/internal/domain/complaint/valueobjects"
	"campushub/internal/shared/errors"
)

func TestGetComplaintUseCase_Execute(t *testing.T) {
	existing := reconstructComplaint(5, "rahul_21", vo.StatusPending, vo.PriorityHigh, time.Now())
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	useCase := NewGetComplaintUseCase(mockRepo, &mockLogger{})

	t.Run("owner can view", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), GetComplaintQuery{
			ComplaintID:       5,
			RequesterUsername: "rahul_21",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("warden can view any", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), GetComplaintQuery{
			ComplaintID:       5,
			RequesterUsername: "warden",
			RequesterIsAdmin:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
	})

	t.Run("other students are forbidden", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), GetComplaintQuery{
			ComplaintID:       5,
			RequesterUsername: "asha_09",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing complaint is not found", func(t *testing.T) {
		missingRepo := &mockComplaintRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
				return nil, assert.AnError
			},
		}
		uc := NewGetComplaintUseCase(missingRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetComplaintQuery{ComplaintID: 99, RequesterIsAdmin: true})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestGetStatsUseCase_Execute(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		CountByStatusFunc: func(ctx context.Context) (*complaint.StatusCounts, error) {
			return &complaint.StatusCounts{Total: 6, Pending: 3, InProgress: 2, Resolved: 1}, nil
		},
	}

	useCase := NewGetStatsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Total)
	assert.Equal(t, int64(3), result.Pending)
	assert.Equal(t, int64(2), result.InProgress)
	assert.Equal(t, int64(1), result.Resolved)
}
