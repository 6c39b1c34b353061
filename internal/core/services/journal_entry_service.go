package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/parenting_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/google/uuid"
)

type journalEntryService struct {
	BaseService
	entryRepo   portsrepo.JournalEntryRepositoryFacade
	invalidator portssvc.StatsInvalidator
	now         func() time.Time
}

// JournalEntryServiceOption is a functional option for configuring the journal entry service
type JournalEntryServiceOption func(*journalEntryService)

// WithStatsInvalidator registers a cache that must be dropped whenever a family's entries change.
func WithStatsInvalidator(invalidator portssvc.StatsInvalidator) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.invalidator = invalidator
	}
}

// WithEntryClock overrides the clock used for creation timestamps.
func WithEntryClock(now func() time.Time) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.now = now
	}
}

// NewJournalEntryService creates a journal entry service. Authorization goes through authorizer.
func NewJournalEntryService(
	entryRepo portsrepo.JournalEntryRepositoryFacade,
	authorizer portssvc.FamilyAuthorizerSvc,
	options ...JournalEntryServiceOption,
) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		BaseService: BaseService{FamilyAuthorizer: authorizer},
		entryRepo:   entryRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) CreateEntry(ctx context.Context, familyID, userID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if _, err := s.AuthorizeUser(ctx, userID, familyID, domain.RoleCaregiver); err != nil {
		return nil, err
	}

	entryType := domain.EntryType(req.EntryType)
	if !entryType.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown entry type " + req.EntryType)
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationFailedError("content must not be blank")
	}

	var mood *string
	if req.Mood != nil {
		if m := strings.TrimSpace(*req.Mood); m != "" {
			mood = &m
		}
	}

	now := s.now()
	entry := domain.JournalEntry{
		EntryID:      uuid.NewString(),
		FamilyID:     familyID,
		AuthorUserID: userID,
		Title:        strings.TrimSpace(req.Title),
		Content:      content,
		Mood:         mood,
		EntryType:    entryType.Normalize(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.entryRepo.SaveJournalEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry",
			slog.String("family_id", familyID))
		return nil, err
	}
	s.invalidate(familyID)

	s.LogInfo(ctx, "Journal entry created",
		slog.String("family_id", familyID),
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_type", string(entry.EntryType)))
	return &entry, nil
}

func (s *journalEntryService) GetEntry(ctx context.Context, familyID, entryID, userID string) (*domain.JournalEntry, error) {
	if _, err := s.AuthorizeUser(ctx, userID, familyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, familyID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal entry",
				slog.String("family_id", familyID),
				slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalEntryService) ListEntries(ctx context.Context, familyID, userID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error) {
	if _, err := s.AuthorizeUser(ctx, userID, familyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	entries, next, err := s.entryRepo.ListJournalEntriesByFamily(ctx, familyID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journal entries",
				slog.String("family_id", familyID))
		}
		return nil, nil, err
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, next, nil
}

// DeleteEntry lets authors (CAREGIVER or above) remove their own entries; other entries need PARENT.
func (s *journalEntryService) DeleteEntry(ctx context.Context, familyID, entryID, userID string) error {
	member, err := s.AuthorizeUser(ctx, userID, familyID, domain.RoleCaregiver)
	if err != nil {
		return err
	}

	entry, err := s.entryRepo.FindJournalEntryByID(ctx, familyID, entryID)
	if err != nil {
		return err
	}
	if entry.AuthorUserID != userID && !member.Role.Satisfies(domain.RoleParent) {
		s.LogDebug(ctx, "Only parents may delete entries written by others",
			slog.String("entry_id", entryID))
		return apperrors.ErrForbidden
	}

	if err := s.entryRepo.DeleteJournalEntry(ctx, familyID, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry",
				slog.String("entry_id", entryID))
		}
		return err
	}
	s.invalidate(familyID)

	s.LogInfo(ctx, "Journal entry deleted",
		slog.String("family_id", familyID),
		slog.String("entry_id", entryID))
	return nil
}

func (s *journalEntryService) invalidate(familyID string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(familyID)
	}
}
