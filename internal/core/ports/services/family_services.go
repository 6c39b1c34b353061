package services

import (
	"context"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
)

// FamilyReaderSvc defines read operations for family data
type FamilyReaderSvc interface {
	// ListUserFamilies retrieves the families a user belongs to.
	ListUserFamilies(ctx context.Context, userID string) ([]domain.Family, error)

	// ListFamilyMembers retrieves all members of a family.
	// Only members of the family can access this data.
	ListFamilyMembers(ctx context.Context, familyID, requestingUserID string) ([]domain.FamilyMember, error)
}

// FamilyWriterSvc defines write operations for family data
type FamilyWriterSvc interface {
	// CreateFamily creates a family and makes the creator its first PARENT.
	CreateFamily(ctx context.Context, req dto.CreateFamilyRequest, creatorUserID string) (*domain.Family, error)

	// JoinFamily adds the user to the family owning the invite code as a CAREGIVER.
	JoinFamily(ctx context.Context, inviteCode, userID string) (*domain.Family, error)
}

// FamilyAuthorizerSvc defines authorization checks against family membership
type FamilyAuthorizerSvc interface {
	// AuthorizeUserAction checks that userID is a member of familyID with at least the required role.
	// Returns apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID, familyID string, required domain.FamilyRole) (*domain.FamilyMember, error)
}

// FamilySvcFacade combines all family-related service interfaces
type FamilySvcFacade interface {
	FamilyReaderSvc
	FamilyWriterSvc
	FamilyAuthorizerSvc
}
