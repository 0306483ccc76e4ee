package auth

import (
	"campushub/internal/shared/authorization"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/validation"
)

// Identity is a signed-in portal user. There is no user aggregate behind it:
// wardens come from a static credential table and students are admitted on
// username format alone, so the identity is all the rest of the system needs.
type Identity struct {
	username    string
	role        authorization.UserRole
	displayName string
}

// NewStudentIdentity admits a student by username format (3-20 letters,
// digits or underscores). The portal deliberately has no student roster.
func NewStudentIdentity(username string) (*Identity, error) {
	result := validation.Username(username)
	if result.State != validation.StateValid {
		return nil, errors.NewValidationError("Username must be 3-20 letters, numbers or underscores")
	}
	return &Identity{
		username:    result.Normalized,
		role:        authorization.RoleStudent,
		displayName: result.Normalized,
	}, nil
}

// NewAdminIdentity builds an identity for a credential-table entry.
func NewAdminIdentity(username, displayName string) *Identity {
	if displayName == "" {
		displayName = username
	}
	return &Identity{
		username:    username,
		role:        authorization.RoleAdmin,
		displayName: displayName,
	}
}

func (i *Identity) Username() string             { return i.username }
func (i *Identity) Role() authorization.UserRole { return i.role }
func (i *Identity) DisplayName() string          { return i.displayName }
func (i *Identity) IsAdmin() bool                { return i.role.IsAdmin() }
