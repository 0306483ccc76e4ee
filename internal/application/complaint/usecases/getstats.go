package usecases

import (
	"context"

	"campushub/internal/domain/complaint"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type GetStatsResult struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

type GetStatsUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewGetStatsUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsResult, error) {
	counts, err := uc.complaintRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count complaints", "error", err)
		return nil, errors.NewInternalError("failed to compute complaint stats")
	}

	return &GetStatsResult{
		Total:      counts.Total,
		Pending:    counts.Pending,
		InProgress: counts.InProgress,
		Resolved:   counts.Resolved,
	}, nil
}
