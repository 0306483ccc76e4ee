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

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	existing := reconstructComplaint(1, "rahul_21", vo.StatusPending, vo.PriorityHigh, time.Now().Add(-time.Hour))

	var savedComment *complaint.Comment
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *complaint.Comment) error {
			comment.SetID(7)
			savedComment = comment
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockRepo, mockComments, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ComplaintID: 1,
		Author:      "rahul_21",
		AuthorRole:  "student",
		Text:        "Still no plumber visit",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.CommentID)
	assert.False(t, result.Skipped)
	require.NotNil(t, savedComment)
	assert.Equal(t, "Still no plumber visit", savedComment.Text())
	assert.Len(t, existing.Comments(), 1)
}

func TestAddCommentUseCase_Execute_EmptyTextIsSilentNoOp(t *testing.T) {
	lookedUp := false
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			lookedUp = true
			return nil, assert.AnError
		},
	}

	useCase := NewAddCommentUseCase(mockRepo, &mockCommentRepository{}, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ComplaintID: 1,
		Author:      "rahul_21",
		AuthorRole:  "student",
		Text:        "   \t  ",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Skipped)
	assert.False(t, lookedUp)
}

func TestAddCommentUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return nil, assert.AnError
		},
	}

	useCase := NewAddCommentUseCase(mockRepo, &mockCommentRepository{}, &mockTransactor{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), AddCommentCommand{
		ComplaintID: 99,
		Author:      "rahul_21",
		Text:        "hello there",
	})

	require.Error(t, err)
}
