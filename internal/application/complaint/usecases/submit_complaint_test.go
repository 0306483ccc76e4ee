package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain/complaint"
)

func validSubmitCommand() SubmitComplaintCommand {
	return SubmitComplaintCommand{
		Title:           "Leaking tap in bathroom",
		Category:        "water",
		RoomNumber:      "a1-2",
		Description:     "Water has been leaking since morning",
		Priority:        "high",
		ContactNumber:   "9876543210",
		StudentUsername: "rahul_21",
	}
}

func TestSubmitComplaintUseCase_Execute_Success(t *testing.T) {
	var saved *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			c.SetID(42)
			saved = c
			return nil
		},
	}

	useCase := NewSubmitComplaintUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), validSubmitCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.ComplaintID)
	assert.Equal(t, "pending", result.Status)
	require.NotNil(t, saved)
	assert.Equal(t, "A1-2", saved.RoomNumber())
}

func TestSubmitComplaintUseCase_Execute_StripsMarkup(t *testing.T) {
	var saved *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			saved = c
			return nil
		},
	}

	cmd := validSubmitCommand()
	cmd.Title = "<b>Leaking tap</b> in bathroom"
	cmd.Description = "Water has been <script>alert(1)</script>leaking since morning"

	useCase := NewSubmitComplaintUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Leaking tap in bathroom", saved.Title())
	assert.NotContains(t, saved.Description(), "<script>")
}

func TestSubmitComplaintUseCase_Execute_ValidationError(t *testing.T) {
	saveCalled := false
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			saveCalled = true
			return nil
		},
	}

	cmd := validSubmitCommand()
	cmd.ContactNumber = "12345"

	useCase := NewSubmitComplaintUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, saveCalled)
}

func TestSubmitComplaintUseCase_Execute_SaveFailure(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			return errors.New("disk full")
		},
	}

	useCase := NewSubmitComplaintUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), validSubmitCommand())

	require.Error(t, err)
	assert.Nil(t, result)
}
