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

// Sort keys for the student complaint view.
const (
	SortDateDesc = "date-desc"
	SortDateAsc  = "date-asc"
	SortPriority = "priority"
	SortStatus   = "status"
)

type ListMyComplaintsQuery struct {
	StudentUsername string
	// Status and Category narrow the owner's list; empty means all.
	Status   string
	Category string
	// SortBy is one of the Sort* keys; empty defaults to date-desc.
	SortBy string
}

type ListMyComplaintsResult struct {
	Complaints []dto.ComplaintListItemDTO
	Total      int64
}

type ListMyComplaintsUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewListMyComplaintsUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *ListMyComplaintsUseCase {
	return &ListMyComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListMyComplaintsUseCase) Execute(ctx context.Context, query ListMyComplaintsQuery) (*ListMyComplaintsResult, error) {
	if query.StudentUsername == "" {
		return nil, errors.NewValidationError("student username is required")
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = SortDateDesc
	}
	switch sortBy {
	case SortDateDesc, SortDateAsc, SortPriority, SortStatus:
	default:
		return nil, errors.NewValidationError("invalid sort key")
	}

	filter := complaint.ComplaintFilter{StudentUsername: &query.StudentUsername}
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

	complaints, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "student", query.StudentUsername, "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	sortComplaints(complaints, sortBy)

	items := make([]dto.ComplaintListItemDTO, 0, len(complaints))
	for _, c := range complaints {
		items = append(items, dto.ToComplaintListItemDTO(c))
	}

	return &ListMyComplaintsResult{
		Complaints: items,
		Total:      int64(len(items)),
	}, nil
}

// sortComplaints orders the slice in place. The sort is stable over the
// repository's insertion order, so equal keys keep their submission order.
func sortComplaints(complaints []*complaint.Complaint, sortBy string) {
	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(complaints, func(i, j int) bool {
			return complaints[i].SubmittedAt().Before(complaints[j].SubmittedAt())
		})
	case SortPriority:
		sort.SliceStable(complaints, func(i, j int) bool {
			return complaints[i].Priority().Rank() > complaints[j].Priority().Rank()
		})
	case SortStatus:
		sort.SliceStable(complaints, func(i, j int) bool {
			return complaints[i].Status().Rank() > complaints[j].Status().Rank()
		})
	default:
		sort.SliceStable(complaints, func(i, j int) bool {
			return complaints[i].SubmittedAt().After(complaints[j].SubmittedAt())
		})
	}
}
