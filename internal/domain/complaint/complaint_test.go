package complaint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain/complaint/valueobjects"
)

func validArgs() (title, category, room, desc, priority, phone, username string) {
	return "Leaking tap in bathroom", "water", "a1-2", "Water has been leaking since morning", "high", "9876543210", "rahul_21"
}

func TestNewComplaint(t *testing.T) {
	t.Run("valid complaint starts pending with normalized fields", func(t *testing.T) {
		c, err := NewComplaint(validArgs())
		require.NoError(t, err)

		assert.Equal(t, valueobjects.StatusPending, c.Status())
		assert.Equal(t, "A1-2", c.RoomNumber())
		assert.Equal(t, "9876543210", c.ContactNumber())
		assert.Equal(t, "rahul_21", c.StudentUsername())
		assert.False(t, c.SubmittedAt().IsZero())
		assert.Equal(t, c.SubmittedAt(), c.UpdatedAt())
		assert.Empty(t, c.Comments())
	})

	tests := []struct {
		name    string
		mutate  func(title, category, room, desc, priority, phone, username *string)
		wantErr string
	}{
		{
			name: "title shorter than 5 characters",
			mutate: func(title, _, _, _, _, _, _ *string) {
				*title = "Tap"
			},
			wantErr: "Title",
		},
		{
			name: "title longer than 100 characters",
			mutate: func(title, _, _, _, _, _, _ *string) {
				*title = strings.Repeat("x", 101)
			},
			wantErr: "Title",
		},
		{
			name: "title of exactly 100 characters is accepted",
			mutate: func(title, _, _, _, _, _, _ *string) {
				*title = strings.Repeat("x", 100)
			},
		},
		{
			name: "unknown category",
			mutate: func(_, category, _, _, _, _, _ *string) {
				*category = "plumbing"
			},
			wantErr: "category",
		},
		{
			name: "room number with underscore",
			mutate: func(_, _, room, _, _, _, _ *string) {
				*room = "a1_2"
			},
			wantErr: "Room number",
		},
		{
			name: "room number longer than 10 characters",
			mutate: func(_, _, room, _, _, _, _ *string) {
				*room = "A1234567890"
			},
			wantErr: "Room number",
		},
		{
			name: "description of 9 characters is rejected",
			mutate: func(_, _, _, desc, _, _, _ *string) {
				*desc = strings.Repeat("d", 9)
			},
			wantErr: "Description",
		},
		{
			name: "description of exactly 10 characters is accepted",
			mutate: func(_, _, _, desc, _, _, _ *string) {
				*desc = strings.Repeat("d", 10)
			},
		},
		{
			name: "description longer than 500 characters",
			mutate: func(_, _, _, desc, _, _, _ *string) {
				*desc = strings.Repeat("d", 501)
			},
			wantErr: "Description",
		},
		{
			name: "unknown priority",
			mutate: func(_, _, _, _, priority, _, _ *string) {
				*priority = "critical"
			},
			wantErr: "priority",
		},
		{
			name: "phone with 9 digits",
			mutate: func(_, _, _, _, _, phone, _ *string) {
				*phone = "987654321"
			},
			wantErr: "Contact number",
		},
		{
			name: "phone with letters",
			mutate: func(_, _, _, _, _, phone, _ *string) {
				*phone = "98765abc10"
			},
			wantErr: "Contact number",
		},
		{
			name: "missing student username",
			mutate: func(_, _, _, _, _, _, username *string) {
				*username = ""
			},
			wantErr: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, category, room, desc, priority, phone, username := validArgs()
			tt.mutate(&title, &category, &room, &desc, &priority, &phone, &username)

			_, err := NewComplaint(title, category, room, desc, priority, phone, username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestComplaint_ChangeStatus(t *testing.T) {
	newComplaint := func(t *testing.T) *Complaint {
		c, err := NewComplaint(validArgs())
		require.NoError(t, err)
		c.SetID(7)
		return c
	}

	t.Run("records a system comment with the display status", func(t *testing.T) {
		c := newComplaint(t)

		comment, err := c.ChangeStatus(valueobjects.StatusInProgress, "")
		require.NoError(t, err)

		assert.Equal(t, valueobjects.StatusInProgress, c.Status())
		assert.Equal(t, SystemAuthor, comment.Author())
		assert.Equal(t, `Status updated to "in progress"`, comment.Text())
		assert.Equal(t, uint(7), comment.ComplaintID())
		require.Len(t, c.Comments(), 1)
	})

	t.Run("appends the note after the status line", func(t *testing.T) {
		c := newComplaint(t)

		comment, err := c.ChangeStatus(valueobjects.StatusResolved, "Plumber replaced the washer")
		require.NoError(t, err)

		assert.Equal(t, `Status updated to "resolved": Plumber replaced the washer`, comment.Text())
	})

	t.Run("resolved complaints can be reopened", func(t *testing.T) {
		c := newComplaint(t)
		_, err := c.ChangeStatus(valueobjects.StatusResolved, "")
		require.NoError(t, err)

		_, err = c.ChangeStatus(valueobjects.StatusPending, "Leak is back")
		require.NoError(t, err)
		assert.Equal(t, valueobjects.StatusPending, c.Status())
		assert.Len(t, c.Comments(), 2)
	})

	t.Run("same-status update still bumps UpdatedAt and comments", func(t *testing.T) {
		c := newComplaint(t)
		before := c.UpdatedAt()

		_, err := c.ChangeStatus(valueobjects.StatusPending, "Looking into it")
		require.NoError(t, err)

		assert.Equal(t, valueobjects.StatusPending, c.Status())
		assert.Len(t, c.Comments(), 1)
		assert.False(t, c.UpdatedAt().Before(before))
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		c := newComplaint(t)

		_, err := c.ChangeStatus(valueobjects.ComplaintStatus("closed"), "")
		assert.Error(t, err)
		assert.Equal(t, valueobjects.StatusPending, c.Status())
		assert.Empty(t, c.Comments())
	})
}

func TestComplaint_CanBeViewedBy(t *testing.T) {
	c, err := NewComplaint(validArgs())
	require.NoError(t, err)

	assert.True(t, c.CanBeViewedBy("rahul_21", false))
	assert.False(t, c.CanBeViewedBy("someone_else", false))
	assert.True(t, c.CanBeViewedBy("warden", true))
}

func TestNewComment(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		comment, err := NewComment(1, "rahul_21", "student", "  still broken  ")
		require.NoError(t, err)
		assert.Equal(t, "still broken", comment.Text())
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		_, err := NewComment(1, "rahul_21", "student", "   \t ")
		assert.Error(t, err)
	})

	t.Run("rejects missing author", func(t *testing.T) {
		_, err := NewComment(1, "", "student", "still broken")
		assert.Error(t, err)
	})
}
