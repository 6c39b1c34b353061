package domain

// JournalStats summarizes a family's journal activity.
type JournalStats struct {
	TotalEntries       int `json:"totalEntries"`
	WeekEntries        int `json:"weekEntries"`
	LongestStreak      int `json:"longestStreak"`
	WeekSharedJourneys int `json:"weekSharedJourneys"`
	WeekQuickMoments   int `json:"weekQuickMoments"`
}

// MoodCount is one row of the mood distribution.
type MoodCount struct {
	Mood       string `json:"mood"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MoodTrend counts one mood's occurrences on one calendar date (YYYY-MM-DD).
type MoodTrend struct {
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MoodStreak is the run of consecutive days ending at the most recent entry that share its mood.
type MoodStreak struct {
	CurrentMood *string `json:"currentMood"`
	StreakDays  int     `json:"streakDays"`
}

// MoodAnalytics aggregates the mood-bearing entries of a family.
type MoodAnalytics struct {
	MoodDistribution  []MoodCount `json:"moodDistribution"`
	MoodTrends        []MoodTrend `json:"moodTrends"`
	WeeklyMoodAverage int         `json:"weeklyMoodAverage"`
	MoodStreak        MoodStreak  `json:"moodStreak"`
}
