package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/parenting_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/SscSPs/parenting_journal_app/internal/utils"
	"github.com/google/uuid"
)

// inviteCodeBytes yields a 16 character hex invite code.
const inviteCodeBytes = 8

// familyService implements the FamilySvcFacade interface
type familyService struct {
	BaseService
	familyRepo portsrepo.FamilyRepositoryFacade
	now        func() time.Time
}

// NewFamilyService creates a new family service with the provided dependencies
func NewFamilyService(familyRepo portsrepo.FamilyRepositoryFacade) portssvc.FamilySvcFacade {
	return &familyService{
		familyRepo: familyRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Ensure familyService implements the FamilySvcFacade interface
var _ portssvc.FamilySvcFacade = (*familyService)(nil)

// CreateFamily creates a family with the creator as its first PARENT.
func (s *familyService) CreateFamily(ctx context.Context, req dto.CreateFamilyRequest, creatorUserID string) (*domain.Family, error) {
	inviteCode, err := utils.GenerateSecureRandomString(inviteCodeBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate invite code")
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	now := s.now()
	family := domain.Family{
		FamilyID:   uuid.NewString(),
		Name:       req.Name,
		InviteCode: inviteCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	owner := domain.FamilyMember{
		UserID:   creatorUserID,
		FamilyID: family.FamilyID,
		Role:     domain.RoleParent,
		JoinedAt: now,
	}

	if err := s.familyRepo.SaveFamily(ctx, family, owner); err != nil {
		s.LogError(ctx, err, "Failed to save family",
			slog.String("family_id", family.FamilyID))
		return nil, err
	}

	s.LogInfo(ctx, "Family created successfully",
		slog.String("family_id", family.FamilyID),
		slog.String("creator_id", creatorUserID))
	return &family, nil
}

// JoinFamily adds userID to the family owning inviteCode as a CAREGIVER.
func (s *familyService) JoinFamily(ctx context.Context, inviteCode, userID string) (*domain.Family, error) {
	family, err := s.familyRepo.FindFamilyByInviteCode(ctx, inviteCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up invite code")
		}
		return nil, err
	}

	member := domain.FamilyMember{
		UserID:   userID,
		FamilyID: family.FamilyID,
		Role:     domain.RoleCaregiver,
		JoinedAt: s.now(),
	}
	if err := s.familyRepo.AddFamilyMember(ctx, member); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to add family member",
				slog.String("family_id", family.FamilyID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User joined family",
		slog.String("family_id", family.FamilyID),
		slog.String("role", string(member.Role)))
	return family, nil
}

// ListUserFamilies retrieves all families a user belongs to
func (s *familyService) ListUserFamilies(ctx context.Context, userID string) ([]domain.Family, error) {
	families, err := s.familyRepo.ListFamiliesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list families for user")
		return nil, err
	}
	if families == nil {
		return []domain.Family{}, nil
	}
	return families, nil
}

// ListFamilyMembers retrieves the members of a family; the requester must belong to it.
func (s *familyService) ListFamilyMembers(ctx context.Context, familyID, requestingUserID string) ([]domain.FamilyMember, error) {
	if _, err := s.AuthorizeUserAction(ctx, requestingUserID, familyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.familyRepo.ListFamilyMembers(ctx, familyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list family members",
			slog.String("family_id", familyID))
		return nil, err
	}
	return members, nil
}

// AuthorizeUserAction checks whether userID holds at least the required role in familyID.
// Non-members get ErrForbidden rather than ErrNotFound so family IDs cannot be probed.
func (s *familyService) AuthorizeUserAction(ctx context.Context, userID, familyID string, required domain.FamilyRole) (*domain.FamilyMember, error) {
	member, err := s.familyRepo.FindFamilyMember(ctx, userID, familyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of family",
				slog.String("family_id", familyID))
			return nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find family membership",
			slog.String("family_id", familyID))
		return nil, err
	}

	if !member.Role.Satisfies(required) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("family_id", familyID),
			slog.String("user_role", string(member.Role)),
			slog.String("required_role", string(required)))
		return nil, apperrors.ErrForbidden
	}
	return member, nil
}
