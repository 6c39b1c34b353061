package models

import (
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// Family is a row of the families table.
type Family struct {
	FamilyID   string `db:"family_id"`
	Name       string `db:"name"`
	InviteCode string `db:"invite_code"`
	AuditFields
}

// ToDomain converts the row into a domain.Family.
func (m Family) ToDomain() domain.Family {
	return domain.Family{
		FamilyID:    m.FamilyID,
		Name:        m.Name,
		InviteCode:  m.InviteCode,
		AuditFields: domain.AuditFields(m.AuditFields),
	}
}

// FamilyMember is a row of family_members joined with the member's display name.
type FamilyMember struct {
	UserID   string    `db:"user_id"`
	UserName string    `db:"user_name"`
	FamilyID string    `db:"family_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}

// ToDomain converts the row into a domain.FamilyMember.
func (m FamilyMember) ToDomain() domain.FamilyMember {
	return domain.FamilyMember{
		UserID:   m.UserID,
		UserName: m.UserName,
		FamilyID: m.FamilyID,
		Role:     domain.FamilyRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
