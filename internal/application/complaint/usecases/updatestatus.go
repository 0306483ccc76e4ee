package usecases

import (
	"context"
	"fmt"

	"campushub/internal/domain/complaint"
	"campushub/internal/domain/complaint/valueobjects"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/sanitize"
)

type UpdateStatusCommand struct {
	ComplaintID uint
	NewStatus   string
	// Note is optional free text appended to the generated status comment.
	Note string
}

type UpdateStatusResult struct {
	ComplaintID uint
	OldStatus   string
	NewStatus   string
	UpdatedAt   string
}

type UpdateStatusUseCase struct {
	complaintRepo complaint.ComplaintRepository
	commentRepo   complaint.CommentRepository
	txManager     db.Transactor
	logger        logger.Interface
}

func NewUpdateStatusUseCase(
	complaintRepo complaint.ComplaintRepository,
	commentRepo complaint.CommentRepository,
	txManager db.Transactor,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case",
		"complaint_id", cmd.ComplaintID, "new_status", cmd.NewStatus)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	newStatus, err := valueobjects.NewComplaintStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	c, err := uc.complaintRepo.FindByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", cmd.ComplaintID))
	}

	oldStatus := c.Status()

	comment, err := c.ChangeStatus(newStatus, sanitize.Text(cmd.Note))
	if err != nil {
		uc.logger.Warnw("status change rejected", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Update(txCtx, c); err != nil {
			return err
		}
		return uc.commentRepo.Save(txCtx, comment)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist status change", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to update complaint status")
	}

	uc.logger.Infow("complaint status updated",
		"complaint_id", cmd.ComplaintID, "old_status", oldStatus, "new_status", newStatus)

	return &UpdateStatusResult{
		ComplaintID: c.ID(),
		OldStatus:   oldStatus.String(),
		NewStatus:   c.Status().String(),
		UpdatedAt:   c.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
