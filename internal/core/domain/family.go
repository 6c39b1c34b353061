package domain

import "time"

// Family is the ownership scope for journal entries. Every entry belongs to exactly one family.
type Family struct {
	FamilyID   string `json:"familyID" db:"family_id"`     // Primary Key (e.g., UUID)
	Name       string `json:"name" db:"name"`              // e.g. "The Okafors"
	InviteCode string `json:"inviteCode" db:"invite_code"` // Shared with caregivers so they can join
	AuditFields
}

// FamilyRole defines the possible roles a user can have within a family.
type FamilyRole string

const (
	RoleParent    FamilyRole = "PARENT"
	RoleCaregiver FamilyRole = "CAREGIVER"
	RoleReadOnly  FamilyRole = "READONLY" // Can read entries and stats but not write
)

// rank orders roles from least to most privileged.
func (r FamilyRole) rank() int {
	switch r {
	case RoleParent:
		return 3
	case RoleCaregiver:
		return 2
	case RoleReadOnly:
		return 1
	}
	return 0
}

// Satisfies reports whether r grants at least the permissions of required.
func (r FamilyRole) Satisfies(required FamilyRole) bool {
	return r.rank() > 0 && r.rank() >= required.rank()
}

// IsValid reports whether r is one of the known roles.
func (r FamilyRole) IsValid() bool {
	return r.rank() > 0
}

// FamilyMember represents the membership of a User in a Family.
type FamilyMember struct {
	UserID   string     `json:"userID"`   // FK -> users.user_id
	UserName string     `json:"userName"` // Display name of the user
	FamilyID string     `json:"familyID"` // FK -> families.family_id
	Role     FamilyRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}
