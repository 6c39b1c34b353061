package models

import (
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID      string  `db:"entry_id"`
	FamilyID     string  `db:"family_id"`
	AuthorUserID string  `db:"author_user_id"`
	Title        string  `db:"title"`
	Content      string  `db:"content"`
	Mood         *string `db:"mood"`
	EntryType    string  `db:"entry_type"`
	AuditFields
}

// ToDomain converts the row into a domain.JournalEntry.
func (m JournalEntry) ToDomain() domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		FamilyID:     m.FamilyID,
		AuthorUserID: m.AuthorUserID,
		Title:        m.Title,
		Content:      m.Content,
		Mood:         m.Mood,
		EntryType:    domain.EntryType(m.EntryType).Normalize(),
		AuditFields:  domain.AuditFields(m.AuditFields),
	}
}

// StatsRecord is the narrow projection of journal_entries the stats engine reads.
type StatsRecord struct {
	EntryID   string    `db:"entry_id"`
	CreatedAt time.Time `db:"created_at"`
	Mood      *string   `db:"mood"`
	EntryType string    `db:"entry_type"`
}

// ToDomain converts the projection into a partially populated domain.JournalEntry.
func (m StatsRecord) ToDomain(familyID string) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		FamilyID:    familyID,
		Mood:        m.Mood,
		EntryType:   domain.EntryType(m.EntryType).Normalize(),
		AuditFields: domain.AuditFields{CreatedAt: m.CreatedAt},
	}
}
