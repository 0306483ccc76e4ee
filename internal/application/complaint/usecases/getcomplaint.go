package usecases

import (
	"context"
	"fmt"

	"campushub/internal/application/complaint/dto"
	"campushub/internal/domain/complaint"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID       uint
	RequesterUsername string
	RequesterIsAdmin  bool
}

type GetComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.FindByID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "complaint_id", query.ComplaintID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", query.ComplaintID))
	}

	if !c.CanBeViewedBy(query.RequesterUsername, query.RequesterIsAdmin) {
		return nil, errors.NewForbiddenError("you do not have access to this complaint")
	}

	return dto.ToComplaintDTO(c), nil
}
