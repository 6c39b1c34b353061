package services

import (
	"context"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries
type JournalEntryReaderSvc interface {
	// GetEntry retrieves a single entry. The caller must be a member of the family.
	GetEntry(ctx context.Context, familyID, entryID, userID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries, newest first.
	ListEntries(ctx context.Context, familyID, userID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriterSvc defines write operations for journal entries
type JournalEntryWriterSvc interface {
	// CreateEntry records a new entry. Requires at least the CAREGIVER role.
	CreateEntry(ctx context.Context, familyID, userID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry. Authors may delete their own entries; everyone else needs PARENT.
	DeleteEntry(ctx context.Context, familyID, entryID, userID string) error
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}
