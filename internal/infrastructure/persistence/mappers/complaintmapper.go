package mappers

import (
	"time"

	"campushub/internal/domain/complaint"
	vo "campushub/internal/domain/complaint/valueobjects"
	"campushub/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel, comments []*complaint.Comment) (*complaint.Complaint, error)
	CommentToModel(c *complaint.Comment) *models.ComplaintCommentModel
	CommentToDomain(model *models.ComplaintCommentModel) *complaint.Comment
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:              c.ID(),
		Title:           c.Title(),
		Category:        c.Category().String(),
		RoomNumber:      c.RoomNumber(),
		Description:     c.Description(),
		Priority:        c.Priority().String(),
		ContactNumber:   c.ContactNumber(),
		StudentUsername: c.StudentUsername(),
		Status:          c.Status().String(),
		SubmittedAt:     c.SubmittedAt().UnixMilli(),
		UpdatedAt:       c.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel, comments []*complaint.Comment) (*complaint.Complaint, error) {
	status, err := vo.NewComplaintStatus(model.Status)
	if err != nil {
		return nil, err
	}
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.Title,
		category,
		model.RoomNumber,
		model.Description,
		priority,
		model.ContactNumber,
		model.StudentUsername,
		status,
		time.UnixMilli(model.SubmittedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
		comments,
	), nil
}

func (m *ComplaintMapperImpl) CommentToModel(c *complaint.Comment) *models.ComplaintCommentModel {
	return &models.ComplaintCommentModel{
		ID:          c.ID(),
		ComplaintID: c.ComplaintID(),
		Author:      c.Author(),
		AuthorRole:  c.AuthorRole(),
		Text:        c.Text(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) CommentToDomain(model *models.ComplaintCommentModel) *complaint.Comment {
	return complaint.ReconstructComment(
		model.ID,
		model.ComplaintID,
		model.Author,
		model.AuthorRole,
		model.Text,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
