package repositories

import (
	"context"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries. Every method is scoped to one family.
type JournalEntryReader interface {
	// FindJournalEntryByID retrieves a single entry of a family.
	FindJournalEntryByID(ctx context.Context, familyID, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntriesByFamily retrieves a page of entries, newest first, using token-based pagination.
	// It returns the entries, a token for the next page (nil on the last page), and an error.
	ListJournalEntriesByFamily(ctx context.Context, familyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListJournalEntriesForStats retrieves every entry of a family with the columns the stats engine needs.
	ListJournalEntriesForStats(ctx context.Context, familyID string) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entries
type JournalEntryWriter interface {
	// SaveJournalEntry persists a new entry.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteJournalEntry removes an entry of a family. Returns apperrors.ErrNotFound if absent.
	DeleteJournalEntry(ctx context.Context, familyID, entryID string) error
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
