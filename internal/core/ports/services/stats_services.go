package services

import (
	"context"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// StatsReaderSvc exposes the computed statistics of a family.
type StatsReaderSvc interface {
	// JournalStats returns entry counts and streaks for the family.
	JournalStats(ctx context.Context, familyID, userID string) (*domain.JournalStats, error)

	// MoodAnalytics returns the mood distribution, trends and streak for the family.
	MoodAnalytics(ctx context.Context, familyID, userID string) (*domain.MoodAnalytics, error)
}

// StatsInvalidator drops cached statistics after the entries of a family change.
type StatsInvalidator interface {
	Invalidate(familyID string)
}

// StatsSvcFacade combines the stats service interfaces
type StatsSvcFacade interface {
	StatsReaderSvc
	StatsInvalidator
}
