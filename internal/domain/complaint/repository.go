package complaint

import (
	"context"

	"campushub/internal/domain/complaint/valueobjects"
)

// ComplaintFilter narrows complaint listings. Nil fields match everything;
// set fields are combined with AND.
type ComplaintFilter struct {
	Status          *valueobjects.ComplaintStatus
	Category        *valueobjects.Category
	Priority        *valueobjects.Priority
	StudentUsername *string
}

// StatusCounts holds the per-status complaint totals for the stats panel.
type StatusCounts struct {
	Total      int64
	Pending    int64
	InProgress int64
	Resolved   int64
}

// ComplaintRepository persists complaints. List returns complaints in
// insertion order (ascending ID); view ordering is applied by the caller.
type ComplaintRepository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	FindByID(ctx context.Context, id uint) (*Complaint, error)
	List(ctx context.Context, filter ComplaintFilter) ([]*Complaint, error)
	CountByStatus(ctx context.Context) (*StatusCounts, error)
}

// CommentRepository persists complaint comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	FindByComplaintID(ctx context.Context, complaintID uint) ([]*Comment, error)
}
