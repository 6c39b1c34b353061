package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/parenting_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/parenting_journal_app/internal/models"
	"github.com/SscSPs/parenting_journal_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryRepositoryFacade
var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

const selectJournalEntryQuery = `
SELECT entry_id, family_id, author_user_id, title, content, mood, entry_type,
       created_at, created_by, last_updated_at, last_updated_by
FROM journal_entries
`

func (r *PgxJournalEntryRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (
			entry_id, family_id, author_user_id, title, content, mood, entry_type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.FamilyID,
		entry.AuthorUserID,
		entry.Title,
		entry.Content,
		entry.Mood,
		string(entry.EntryType.Normalize()),
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("journal entry " + entry.EntryID + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("family " + entry.FamilyID + " not found")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save journal entry", err)
	}
	return nil
}

func (r *PgxJournalEntryRepository) FindJournalEntryByID(ctx context.Context, familyID, entryID string) (*domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, selectJournalEntryQuery+"WHERE family_id = $1 AND entry_id = $2", familyID, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entry", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal entry", err)
	}
	entry := m.ToDomain()
	return &entry, nil
}

// ListJournalEntriesByFamily pages through a family's entries newest first. The (created_at, entry_id)
// tuple is the cursor so entries written in the same instant are neither skipped nor repeated.
func (r *PgxJournalEntryRepository) ListJournalEntriesByFamily(ctx context.Context, familyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := selectJournalEntryQuery + "WHERE family_id = $1"
	args := []any{familyID}

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", decodeErr)
		}
		query += " AND (created_at, entry_id) < ($2, $3)"
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += " ORDER BY created_at DESC, entry_id DESC LIMIT $" + strconv.Itoa(len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entries for family "+familyID, err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect journal entry rows", err)
	}

	page, next := pagination.NextToken(modelEntries, limit, func(m models.JournalEntry) pagination.Cursor {
		return pagination.Cursor{CreatedAt: m.CreatedAt, ID: m.EntryID}
	})
	entries := make([]domain.JournalEntry, len(page))
	for i, m := range page {
		entries[i] = m.ToDomain()
	}
	return entries, next, nil
}

// ListJournalEntriesForStats loads the narrow projection of every entry of a family.
func (r *PgxJournalEntryRepository) ListJournalEntriesForStats(ctx context.Context, familyID string) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, created_at, mood, entry_type
		FROM journal_entries
		WHERE family_id = $1
		ORDER BY created_at DESC, entry_id DESC`, familyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query entries for stats", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StatsRecord])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect stats rows", err)
	}

	entries := make([]domain.JournalEntry, len(records))
	for i, rec := range records {
		entries[i] = rec.ToDomain(familyID)
	}
	return entries, nil
}

func (r *PgxJournalEntryRepository) DeleteJournalEntry(ctx context.Context, familyID, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, "DELETE FROM journal_entries WHERE family_id = $1 AND entry_id = $2", familyID, entryID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete journal entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry " + entryID + " not found")
	}
	return nil
}
