package repositories

import (
	"context"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// FamilyReader defines read operations for family data
type FamilyReader interface {
	// FindFamilyByID retrieves a specific family by its ID.
	FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error)

	// FindFamilyByInviteCode retrieves the family an invite code belongs to.
	FindFamilyByInviteCode(ctx context.Context, inviteCode string) (*domain.Family, error)

	// ListFamiliesByUserID retrieves all families a user belongs to.
	ListFamiliesByUserID(ctx context.Context, userID string) ([]domain.Family, error)
}

// FamilyWriter defines write operations for family data
type FamilyWriter interface {
	// SaveFamily persists a new family together with its founding member in one transaction.
	SaveFamily(ctx context.Context, family domain.Family, owner domain.FamilyMember) error
}

// FamilyMembershipManager defines operations for managing family memberships
type FamilyMembershipManager interface {
	// AddFamilyMember adds a user to a family. Returns apperrors.ErrDuplicate if already a member.
	AddFamilyMember(ctx context.Context, member domain.FamilyMember) error

	// FindFamilyMember retrieves the membership of a user in a family.
	FindFamilyMember(ctx context.Context, userID, familyID string) (*domain.FamilyMember, error)

	// ListFamilyMembers retrieves all members of a family.
	ListFamilyMembers(ctx context.Context, familyID string) ([]domain.FamilyMember, error)
}

// FamilyRepositoryFacade combines all family-related repository interfaces
// This is a facade for clients that need access to all operations
type FamilyRepositoryFacade interface {
	FamilyReader
	FamilyWriter
	FamilyMembershipManager
}
