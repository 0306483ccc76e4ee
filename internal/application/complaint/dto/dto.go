package dto

import (
	"time"

	"campushub/internal/domain/complaint"
)

type ComplaintDTO struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Category        string       `json:"category"`
	CategoryLabel   string       `json:"category_label"`
	RoomNumber      string       `json:"room_number"`
	Description     string       `json:"description"`
	Priority        string       `json:"priority"`
	ContactNumber   string       `json:"contact_number"`
	StudentUsername string       `json:"student_username"`
	Status          string       `json:"status"`
	StatusLabel     string       `json:"status_label"`
	SubmittedAt     time.Time    `json:"submitted_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Comments        []CommentDTO `json:"comments"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	Author     string    `json:"author"`
	AuthorRole string    `json:"author_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// ComplaintListItemDTO is the compact row used by listings; comments are
// omitted.
type ComplaintListItemDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	RoomNumber    string    `json:"room_number"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	SubmittedAt   time.Time `json:"submitted_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CommentCount  int       `json:"comment_count"`
}

func ToCommentDTO(c *complaint.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Author:     c.Author(),
		AuthorRole: c.AuthorRole(),
		Text:       c.Text(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToComplaintDTO(c *complaint.Complaint) *ComplaintDTO {
	if c == nil {
		return nil
	}

	comments := make([]CommentDTO, 0, len(c.Comments()))
	for _, comment := range c.Comments() {
		comments = append(comments, ToCommentDTO(comment))
	}

	return &ComplaintDTO{
		ID:              c.ID(),
		Title:           c.Title(),
		Category:        c.Category().String(),
		CategoryLabel:   c.Category().DisplayName(),
		RoomNumber:      c.RoomNumber(),
		Description:     c.Description(),
		Priority:        c.Priority().String(),
		ContactNumber:   c.ContactNumber(),
		StudentUsername: c.StudentUsername(),
		Status:          c.Status().String(),
		StatusLabel:     c.Status().DisplayName(),
		SubmittedAt:     c.SubmittedAt(),
		UpdatedAt:       c.UpdatedAt(),
		Comments:        comments,
	}
}

func ToComplaintListItemDTO(c *complaint.Complaint) ComplaintListItemDTO {
	return ComplaintListItemDTO{
		ID:            c.ID(),
		Title:         c.Title(),
		Category:      c.Category().String(),
		CategoryLabel: c.Category().DisplayName(),
		RoomNumber:    c.RoomNumber(),
		Priority:      c.Priority().String(),
		Status:        c.Status().String(),
		StatusLabel:   c.Status().DisplayName(),
		SubmittedAt:   c.SubmittedAt(),
		UpdatedAt:     c.UpdatedAt(),
		CommentCount:  c.CommentCount(),
	}
}
