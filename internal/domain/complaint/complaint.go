package complaint

import (
	"fmt"
	"strings"
	"time"

	"campushub/internal/domain/complaint/valueobjects"
	"campushub/internal/shared/calendar"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/validation"
)

const (
	// SystemAuthor is recorded on comments the tracker writes itself.
	SystemAuthor = "system"

	minTitleLen       = 5
	maxTitleLen       = 100
	minDescriptionLen = 10
	maxDescriptionLen = 500
)

// Complaint is the hostel complaint aggregate root. Its numeric ID is
// assigned by storage and is strictly increasing; IDs are never reused even
// though complaints cannot currently be deleted.
type Complaint struct {
	id              uint
	title           string
	category        valueobjects.Category
	roomNumber      string
	description     string
	priority        valueobjects.Priority
	contactNumber   string
	studentUsername string
	status          valueobjects.ComplaintStatus
	submittedAt     time.Time
	updatedAt       time.Time
	comments        []*Comment
	// commentCount carries the stored comment total on listing paths where
	// the comments themselves are not loaded.
	commentCount int
}

// NewComplaint validates and creates a complaint in the pending status.
// The room number is normalized to upper case.
func NewComplaint(title, category, roomNumber, description, priority, contactNumber, studentUsername string) (*Complaint, error) {
	title = strings.TrimSpace(title)
	if len(title) < minTitleLen || len(title) > maxTitleLen {
		return nil, errors.NewValidationError(
			fmt.Sprintf("Title must be between %d and %d characters", minTitleLen, maxTitleLen))
	}

	cat, err := valueobjects.NewCategory(category)
	if err != nil {
		return nil, errors.NewValidationError("Please select a valid category")
	}

	room := validation.RoomNumber(roomNumber)
	if room.State != validation.StateValid {
		return nil, errors.NewValidationError("Room number must be 1-10 letters, digits or hyphens")
	}

	description = strings.TrimSpace(description)
	if len(description) < minDescriptionLen || len(description) > maxDescriptionLen {
		return nil, errors.NewValidationError(
			fmt.Sprintf("Description must be between %d and %d characters", minDescriptionLen, maxDescriptionLen))
	}

	prio, err := valueobjects.NewPriority(priority)
	if err != nil {
		return nil, errors.NewValidationError("Please select a valid priority")
	}

	phone := validation.Phone(contactNumber)
	if phone.State != validation.StateValid {
		return nil, errors.NewValidationError("Contact number must be exactly 10 digits")
	}

	if studentUsername == "" {
		return nil, errors.NewValidationError("Student username is required")
	}

	now := calendar.NowUTC()
	return &Complaint{
		title:           title,
		category:        cat,
		roomNumber:      room.Normalized,
		description:     description,
		priority:        prio,
		contactNumber:   phone.Normalized,
		studentUsername: studentUsername,
		status:          valueobjects.StatusPending,
		submittedAt:     now,
		updatedAt:       now,
	}, nil
}

// ReconstructComplaint recreates a complaint from persistent storage.
func ReconstructComplaint(
	id uint,
	title string,
	category valueobjects.Category,
	roomNumber string,
	description string,
	priority valueobjects.Priority,
	contactNumber string,
	studentUsername string,
	status valueobjects.ComplaintStatus,
	submittedAt time.Time,
	updatedAt time.Time,
	comments []*Comment,
) *Complaint {
	return &Complaint{
		id:              id,
		title:           title,
		category:        category,
		roomNumber:      roomNumber,
		description:     description,
		priority:        priority,
		contactNumber:   contactNumber,
		studentUsername: studentUsername,
		status:          status,
		submittedAt:     submittedAt,
		updatedAt:       updatedAt,
		comments:        comments,
	}
}

func (c *Complaint) ID() uint                             { return c.id }
func (c *Complaint) Title() string                        { return c.title }
func (c *Complaint) Category() valueobjects.Category      { return c.category }
func (c *Complaint) RoomNumber() string                   { return c.roomNumber }
func (c *Complaint) Description() string                  { return c.description }
func (c *Complaint) Priority() valueobjects.Priority      { return c.priority }
func (c *Complaint) ContactNumber() string                { return c.contactNumber }
func (c *Complaint) StudentUsername() string              { return c.studentUsername }
func (c *Complaint) Status() valueobjects.ComplaintStatus { return c.status }
func (c *Complaint) SubmittedAt() time.Time               { return c.submittedAt }
func (c *Complaint) UpdatedAt() time.Time                 { return c.updatedAt }
func (c *Complaint) Comments() []*Comment                 { return c.comments }

func (c *Complaint) SetID(id uint) {
	c.id = id
}

// CommentCount returns the number of comments, whether or not they are
// loaded.
func (c *Complaint) CommentCount() int {
	if len(c.comments) > 0 {
		return len(c.comments)
	}
	return c.commentCount
}

func (c *Complaint) SetCommentCount(n int) {
	c.commentCount = n
}

// ChangeStatus moves the complaint to newStatus and records a system comment
// describing the change. A same-status update is accepted: it still bumps
// UpdatedAt and leaves an audit comment. The optional note is appended to the
// comment text. Returns the generated comment so callers can persist it.
func (c *Complaint) ChangeStatus(newStatus valueobjects.ComplaintStatus, note string) (*Comment, error) {
	if !c.status.CanTransitionTo(newStatus) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("Cannot change status from %s to %s", c.status, newStatus))
	}

	text := fmt.Sprintf("Status updated to %q", newStatus.DisplayName())
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		text = text + ": " + trimmed
	}

	comment, err := NewComment(c.id, SystemAuthor, "system", text)
	if err != nil {
		return nil, err
	}

	c.status = newStatus
	c.updatedAt = calendar.NowUTC()
	c.comments = append(c.comments, comment)
	return comment, nil
}

// AddComment attaches an already-constructed comment and bumps UpdatedAt.
func (c *Complaint) AddComment(comment *Comment) {
	c.comments = append(c.comments, comment)
	c.updatedAt = calendar.NowUTC()
}

// CanBeViewedBy reports whether the given user may see this complaint.
// Wardens see everything; students only their own submissions.
func (c *Complaint) CanBeViewedBy(username string, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return c.studentUsername == username
}
