package complaint

import (
	"strings"
	"time"

	"campushub/internal/shared/calendar"
	"campushub/internal/shared/errors"
)

// Comment is a remark attached to a complaint, written either by the
// complainant, by a warden, or by the system when the status changes.
type Comment struct {
	id          uint
	complaintID uint
	author      string
	authorRole  string
	text        string
	createdAt   time.Time
}

// NewComment creates a comment. Whitespace-only text is rejected; callers
// that want submit-empty-to-do-nothing semantics must check first.
func NewComment(complaintID uint, author, authorRole, text string) (*Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.NewValidationError("Comment text cannot be empty")
	}
	if author == "" {
		return nil, errors.NewValidationError("Comment author is required")
	}

	return &Comment{
		complaintID: complaintID,
		author:      author,
		authorRole:  authorRole,
		text:        trimmed,
		createdAt:   calendar.NowUTC(),
	}, nil
}

// ReconstructComment recreates a comment from persistent storage.
func ReconstructComment(id, complaintID uint, author, authorRole, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:          id,
		complaintID: complaintID,
		author:      author,
		authorRole:  authorRole,
		text:        text,
		createdAt:   createdAt,
	}
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) ComplaintID() uint    { return c.complaintID }
func (c *Comment) Author() string       { return c.author }
func (c *Comment) AuthorRole() string   { return c.authorRole }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) {
	c.id = id
}
