package domain

// EntryType distinguishes long-form journal entries from short check-ins.
type EntryType string

const (
	EntryTypeSharedJourney EntryType = "shared_journey"
	EntryTypeQuickMoment   EntryType = "quick_moment"
)

// Normalize maps the empty type (entries written before the attribute existed) onto shared_journey.
func (t EntryType) Normalize() EntryType {
	if t == "" {
		return EntryTypeSharedJourney
	}
	return t
}

// IsValid reports whether t is a known entry type. The empty type is accepted and normalized.
func (t EntryType) IsValid() bool {
	switch t {
	case "", EntryTypeSharedJourney, EntryTypeQuickMoment:
		return true
	}
	return false
}

// JournalEntry is a single dated record written by a family member.
type JournalEntry struct {
	EntryID      string    `json:"entryID"`
	FamilyID     string    `json:"familyID"`
	AuthorUserID string    `json:"authorUserID"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Mood         *string   `json:"mood,omitempty"` // Nullable mood marker, e.g. "😊"
	EntryType    EntryType `json:"entryType"`
	AuditFields
}
