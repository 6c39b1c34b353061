package domain_test

import (
	"testing"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFamilyRole_Satisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.FamilyRole
		required domain.FamilyRole
		want     bool
	}{
		{name: "parent can do anything", role: domain.RoleParent, required: domain.RoleParent, want: true},
		{name: "parent satisfies readonly", role: domain.RoleParent, required: domain.RoleReadOnly, want: true},
		{name: "caregiver satisfies caregiver", role: domain.RoleCaregiver, required: domain.RoleCaregiver, want: true},
		{name: "caregiver is not parent", role: domain.RoleCaregiver, required: domain.RoleParent, want: false},
		{name: "readonly cannot write", role: domain.RoleReadOnly, required: domain.RoleCaregiver, want: false},
		{name: "unknown role never satisfies", role: domain.FamilyRole("GUEST"), required: domain.RoleReadOnly, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Satisfies(tt.required))
		})
	}
}

func TestEntryType_Normalize(t *testing.T) {
	assert.Equal(t, domain.EntryTypeSharedJourney, domain.EntryType("").Normalize())
	assert.Equal(t, domain.EntryTypeQuickMoment, domain.EntryTypeQuickMoment.Normalize())
	assert.True(t, domain.EntryType("").IsValid())
	assert.False(t, domain.EntryType("diary").IsValid())
}
