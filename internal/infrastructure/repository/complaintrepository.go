package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campushub/internal/domain/complaint"
	"campushub/internal/infrastructure/persistence/mappers"
	"campushub/internal/infrastructure/persistence/models"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
)

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(database *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}

	// RowsAffected may be 0 when the updated values equal the stored ones.

	return nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	comments, err := r.loadComments(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, comments)
}

// List returns complaints in insertion order (ascending ID). View ordering is
// applied by the use cases.
func (r *ComplaintRepository) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ComplaintModel{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		tx = tx.Where("category = ?", filter.Category.String())
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", filter.Priority.String())
	}
	if filter.StudentUsername != nil {
		tx = tx.Where("student_username = ?", *filter.StudentUsername)
	}

	var rows []models.ComplaintModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	counts, err := r.commentCounts(ctx)
	if err != nil {
		return nil, err
	}

	complaints := make([]*complaint.Complaint, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i], nil)
		if err != nil {
			return nil, err
		}
		c.SetCommentCount(counts[rows[i].ID])
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func (r *ComplaintRepository) CountByStatus(ctx context.Context) (*complaint.StatusCounts, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	err := tx.
		Model(&models.ComplaintModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count complaints: %w", err)
	}

	counts := &complaint.StatusCounts{}
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case "pending":
			counts.Pending = row.Count
		case "in-progress":
			counts.InProgress = row.Count
		case "resolved":
			counts.Resolved = row.Count
		}
	}

	return counts, nil
}

func (r *ComplaintRepository) loadComments(ctx context.Context, complaintID uint) ([]*complaint.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ComplaintCommentModel
	err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*complaint.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, r.mapper.CommentToDomain(&rows[i]))
	}
	return comments, nil
}

func (r *ComplaintRepository) commentCounts(ctx context.Context) (map[uint]int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		ComplaintID uint
		Count       int
	}
	err := tx.
		Model(&models.ComplaintCommentModel{}).
		Select("complaint_id, COUNT(*) as count").
		Group("complaint_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.ComplaintID] = row.Count
	}
	return counts, nil
}

// CommentRepository persists complaint comments.
type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *complaint.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	comment.SetID(model.ID)
	return nil
}

func (r *CommentRepository) FindByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ComplaintCommentModel
	err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*complaint.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, r.mapper.CommentToDomain(&rows[i]))
	}
	return comments, nil
}
