package dto

import "github.com/SscSPs/parenting_journal_app/internal/core/domain"

// JournalStatsResponse is the body of GET /families/{family_id}/stats/journal.
type JournalStatsResponse struct {
	TotalEntries       int `json:"totalEntries"`
	WeekEntries        int `json:"weekEntries"`
	LongestStreak      int `json:"longestStreak"`
	WeekSharedJourneys int `json:"weekSharedJourneys"`
	WeekQuickMoments   int `json:"weekQuickMoments"`
}

// MoodCountResponse is one row of the mood distribution.
type MoodCountResponse struct {
	Mood       string `json:"mood"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MoodTrendResponse counts one mood on one day.
type MoodTrendResponse struct {
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MoodStreakResponse describes the current mood streak. CurrentMood is null when there are no moods.
type MoodStreakResponse struct {
	CurrentMood *string `json:"currentMood"`
	StreakDays  int     `json:"streakDays"`
}

// MoodAnalyticsResponse is the body of GET /families/{family_id}/stats/mood.
type MoodAnalyticsResponse struct {
	MoodDistribution  []MoodCountResponse `json:"moodDistribution"`
	MoodTrends        []MoodTrendResponse `json:"moodTrends"`
	WeeklyMoodAverage int                 `json:"weeklyMoodAverage"`
	MoodStreak        MoodStreakResponse  `json:"moodStreak"`
}

// ToJournalStatsResponse converts domain.JournalStats to its DTO.
func ToJournalStatsResponse(s *domain.JournalStats) JournalStatsResponse {
	return JournalStatsResponse{
		TotalEntries:       s.TotalEntries,
		WeekEntries:        s.WeekEntries,
		LongestStreak:      s.LongestStreak,
		WeekSharedJourneys: s.WeekSharedJourneys,
		WeekQuickMoments:   s.WeekQuickMoments,
	}
}

// ToMoodAnalyticsResponse converts domain.MoodAnalytics to its DTO. Slices are never nil so
// empty results serialize as [].
func ToMoodAnalyticsResponse(a *domain.MoodAnalytics) MoodAnalyticsResponse {
	resp := MoodAnalyticsResponse{
		MoodDistribution:  make([]MoodCountResponse, len(a.MoodDistribution)),
		MoodTrends:        make([]MoodTrendResponse, len(a.MoodTrends)),
		WeeklyMoodAverage: a.WeeklyMoodAverage,
		MoodStreak: MoodStreakResponse{
			CurrentMood: a.MoodStreak.CurrentMood,
			StreakDays:  a.MoodStreak.StreakDays,
		},
	}
	for i, d := range a.MoodDistribution {
		resp.MoodDistribution[i] = MoodCountResponse{Mood: d.Mood, Count: d.Count, Percentage: d.Percentage}
	}
	for i, tr := range a.MoodTrends {
		resp.MoodTrends[i] = MoodTrendResponse{Date: tr.Date, Mood: tr.Mood, Count: tr.Count}
	}
	return resp
}
