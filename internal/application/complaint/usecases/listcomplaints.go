package usecases

import (
	"context"
	"sort"

	"campushub/internal/application/complaint/dto"
	"campushub/internal/domain/complaint"
	"campushub/internal/domain/complaint/valueobjects"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

// ListComplaintsQuery is the warden view: all complaints, optionally narrowed
// by status, category and priority (combined with AND).
type ListComplaintsQuery struct {
	Status   string
	Category string
	Priority string
}

type ListComplaintsResult struct {
	Complaints []dto.ComplaintListItemDTO
	Total      int64
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	filter := complaint.ComplaintFilter{}

	if query.Status != "" {
		status, err := valueobjects.NewComplaintStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Category != "" {
		category, err := valueobjects.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}
	if query.Priority != "" {
		priority, err := valueobjects.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	complaints, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	// Repository order is insertion order; the warden view shows newest
	// first, ties kept in insertion order.
	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].SubmittedAt().After(complaints[j].SubmittedAt())
	})

	items := make([]dto.ComplaintListItemDTO, 0, len(complaints))
	for _, c := range complaints {
		items = append(items, dto.ToComplaintListItemDTO(c))
	}

	return &ListComplaintsResult{
		Complaints: items,
		Total:      int64(len(items)),
	}, nil
}
