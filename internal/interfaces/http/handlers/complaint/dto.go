package complaint

import (
	"campushub/internal/application/complaint/usecases"
)

type SubmitComplaintRequest struct {
	Title         string `json:"title" validate:"required"`
	Category      string `json:"category" validate:"required"`
	RoomNumber    string `json:"room_number" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Priority      string `json:"priority" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
}

func (r *SubmitComplaintRequest) ToCommand(username string) usecases.SubmitComplaintCommand {
	return usecases.SubmitComplaintCommand{
		Title:           r.Title,
		Category:        r.Category,
		RoomNumber:      r.RoomNumber,
		Description:     r.Description,
		Priority:        r.Priority,
		ContactNumber:   r.ContactNumber,
		StudentUsername: username,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (r *UpdateStatusRequest) ToCommand(complaintID uint) usecases.UpdateStatusCommand {
	return usecases.UpdateStatusCommand{
		ComplaintID: complaintID,
		NewStatus:   r.Status,
		Note:        r.Note,
	}
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

func (r *AddCommentRequest) ToCommand(complaintID uint, author, authorRole string) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		ComplaintID: complaintID,
		Author:      author,
		AuthorRole:  authorRole,
		Text:        r.Text,
	}
}
