package usecases

import (
	"context"

	"campushub/internal/domain/complaint"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/sanitize"
)

type SubmitComplaintCommand struct {
	Title           string
	Category        string
	RoomNumber      string
	Description     string
	Priority        string
	ContactNumber   string
	StudentUsername string
}

type SubmitComplaintResult struct {
	ComplaintID uint
	Status      string
	SubmittedAt string
}

type SubmitComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewSubmitComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error) {
	uc.logger.Infow("executing submit complaint use case",
		"student", cmd.StudentUsername, "category", cmd.Category)

	c, err := complaint.NewComplaint(
		sanitize.Text(cmd.Title),
		cmd.Category,
		cmd.RoomNumber,
		sanitize.Text(cmd.Description),
		cmd.Priority,
		cmd.ContactNumber,
		cmd.StudentUsername,
	)
	if err != nil {
		uc.logger.Warnw("invalid complaint submission", "student", cmd.StudentUsername, "error", err)
		return nil, err
	}

	if err := uc.complaintRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save complaint", "student", cmd.StudentUsername, "error", err)
		return nil, err
	}

	uc.logger.Infow("complaint submitted", "complaint_id", c.ID(), "student", cmd.StudentUsername)

	return &SubmitComplaintResult{
		ComplaintID: c.ID(),
		Status:      c.Status().String(),
		SubmittedAt: c.SubmittedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
