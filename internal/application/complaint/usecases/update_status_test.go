package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain/complaint"
	vo "campushub/internal/domain/complaint/valueobjects"
)

func reconstructComplaint(id uint, username string, status vo.ComplaintStatus, priority vo.Priority, submittedAt time.Time) *complaint.Complaint {
	return complaint.ReconstructComplaint(
		id,
		"Leaking tap in bathroom",
		vo.CategoryWater,
		"A1-2",
		"Water has been leaking since morning",
		priority,
		"9876543210",
		username,
		status,
		submittedAt,
		submittedAt,
		nil,
	)
}

func TestUpdateStatusUseCase_Execute_Success(t *testing.T) {
	existing := reconstructComplaint(1, "rahul_21", vo.StatusPending, vo.PriorityHigh, time.Now().Add(-time.Hour))

	var savedComment *complaint.Comment
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *complaint.Comment) error {
			comment.SetID(100)
			savedComment = comment
			return nil
		},
	}

	useCase := NewUpdateStatusUseCase(mockRepo, mockComments, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 1,
		NewStatus:   "in-progress",
		Note:        "Plumber scheduled for tomorrow",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "pending", result.OldStatus)
	assert.Equal(t, "in-progress", result.NewStatus)
	require.NotNil(t, savedComment)
	assert.Equal(t, `Status updated to "in progress": Plumber scheduled for tomorrow`, savedComment.Text())
	assert.Equal(t, complaint.SystemAuthor, savedComment.Author())
}

func TestUpdateStatusUseCase_Execute_SameStatusStillComments(t *testing.T) {
	existing := reconstructComplaint(1, "rahul_21", vo.StatusPending, vo.PriorityHigh, time.Now().Add(-time.Hour))

	commentSaved := false
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *complaint.Comment) error {
			commentSaved = true
			return nil
		},
	}

	useCase := NewUpdateStatusUseCase(mockRepo, mockComments, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 1,
		NewStatus:   "pending",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", result.NewStatus)
	assert.True(t, commentSaved)
}

func TestUpdateStatusUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     UpdateStatusCommand
		findErr bool
	}{
		{
			name: "missing complaint ID",
			cmd:  UpdateStatusCommand{NewStatus: "resolved"},
		},
		{
			name: "unknown status",
			cmd:  UpdateStatusCommand{ComplaintID: 1, NewStatus: "closed"},
		},
		{
			name:    "complaint not found",
			cmd:     UpdateStatusCommand{ComplaintID: 99, NewStatus: "resolved"},
			findErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockComplaintRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
					if tt.findErr {
						return nil, assert.AnError
					}
					return reconstructComplaint(id, "rahul_21", vo.StatusPending, vo.PriorityLow, time.Now()), nil
				},
			}

			useCase := NewUpdateStatusUseCase(mockRepo, &mockCommentRepository{}, &mockTransactor{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
