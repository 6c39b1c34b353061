package dto

import (
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// CreateJournalEntryRequest defines the data needed to create a journal entry.
type CreateJournalEntryRequest struct {
	Title     string  `json:"title" binding:"max=200"`
	Content   string  `json:"content" binding:"required,max=20000"`
	Mood      *string `json:"mood" binding:"omitempty,mood"`
	EntryType string  `json:"entryType" binding:"omitempty,entrytype"` // shared_journey (default) or quick_moment
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// JournalEntryResponse defines the journal entry data returned by the API.
type JournalEntryResponse struct {
	EntryID      string    `json:"entryID"`
	FamilyID     string    `json:"familyID"`
	AuthorUserID string    `json:"authorUserID"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Mood         *string   `json:"mood"`
	EntryType    string    `json:"entryType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:      e.EntryID,
		FamilyID:     e.FamilyID,
		AuthorUserID: e.AuthorUserID,
		Title:        e.Title,
		Content:      e.Content,
		Mood:         e.Mood,
		EntryType:    string(e.EntryType.Normalize()),
		CreatedAt:    e.CreatedAt,
	}
}

// ToListJournalEntriesResponse converts a page of entries to ListJournalEntriesResponse DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{
		Entries:   make([]JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return resp
}
