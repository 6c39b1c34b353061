// Package stats reduces a family's dated journal records into streaks, windowed counts
// and mood aggregates. Everything here is a pure function of its input and the engine's
// clock; callers are responsible for scoping records to a single family beforehand.
package stats

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	weekWindow  = 7 * 24 * time.Hour
	trendWindow = 30 * 24 * time.Hour

	secondsPerDay = 24 * 60 * 60
	dayLayout     = "2006-01-02"
)

// PositiveMoodMarkers is the default allow-list of moods counted as positive by the
// weekly mood average: happy, grateful, calm, loving and content.
var PositiveMoodMarkers = []string{"😊", "🙏", "😌", "🥰", "🙂"}

var hundred = decimal.NewFromInt(100)

// DatedRecord is the engine's view of a journal entry.
type DatedRecord struct {
	ID        string
	CreatedAt time.Time
	Mood      string // empty when the entry carries no mood
	EntryType domain.EntryType
}

// FromJournalEntries converts persisted entries into engine records.
func FromJournalEntries(entries []domain.JournalEntry) []DatedRecord {
	records := make([]DatedRecord, len(entries))
	for i, e := range entries {
		records[i] = DatedRecord{
			ID:        e.EntryID,
			CreatedAt: e.CreatedAt,
			EntryType: e.EntryType,
		}
		if e.Mood != nil {
			records[i].Mood = *e.Mood
		}
	}
	return records
}

// Engine computes journal statistics. The zero value is not usable; construct with New.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	loc      *time.Location
	now      func() time.Time
	positive map[string]struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the time zone used to bucket timestamps into calendar days.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock overrides the source of "now" used for the rolling windows.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithPositiveMoods replaces PositiveMoodMarkers. An empty list keeps the default.
func WithPositiveMoods(markers []string) Option {
	return func(e *Engine) {
		if len(markers) == 0 {
			return
		}
		e.positive = toSet(markers)
	}
}

// New creates an Engine bucketing days in UTC with the wall clock and the default positive moods.
func New(opts ...Option) *Engine {
	e := &Engine{
		loc:      time.UTC,
		now:      time.Now,
		positive: toSet(PositiveMoodMarkers),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the time zone used for day bucketing.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// JournalStats computes entry totals, the last-7-days counts and the longest run of
// consecutive calendar days with at least one entry.
func (e *Engine) JournalStats(records []DatedRecord) (domain.JournalStats, error) {
	if err := validate(records); err != nil {
		return domain.JournalStats{}, err
	}

	now := e.now()
	weekStart := now.Add(-weekWindow)

	result := domain.JournalStats{TotalEntries: len(records)}
	days := make(map[civilDay]struct{}, len(records))
	for _, r := range records {
		days[e.dayOf(r.CreatedAt)] = struct{}{}
		if !within(r.CreatedAt, weekStart, now) {
			continue
		}
		result.WeekEntries++
		switch r.EntryType.Normalize() {
		case domain.EntryTypeSharedJourney:
			result.WeekSharedJourneys++
		case domain.EntryTypeQuickMoment:
			result.WeekQuickMoments++
		}
	}
	result.LongestStreak = longestStreak(days)

	return result, nil
}

// MoodAnalytics computes the mood distribution, the 30-day per-day mood trend, the
// share of positive moods over the last 7 days and the current mood streak.
// Records without a mood are ignored.
func (e *Engine) MoodAnalytics(records []DatedRecord) (domain.MoodAnalytics, error) {
	if err := validate(records); err != nil {
		return domain.MoodAnalytics{}, err
	}

	moods := make([]DatedRecord, 0, len(records))
	for _, r := range records {
		if r.Mood != "" {
			moods = append(moods, r)
		}
	}
	if len(moods) == 0 {
		return emptyMoodAnalytics(), nil
	}

	// Most recent first; ties fall back to ID so the result does not depend on input order.
	slices.SortStableFunc(moods, func(a, b DatedRecord) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID, b.ID))
	})

	now := e.now()
	return domain.MoodAnalytics{
		MoodDistribution:  distribution(moods),
		MoodTrends:        e.trends(moods, now.Add(-trendWindow), now),
		WeeklyMoodAverage: e.weeklyAverage(moods, now.Add(-weekWindow), now),
		MoodStreak:        e.moodStreak(moods),
	}, nil
}

func emptyMoodAnalytics() domain.MoodAnalytics {
	return domain.MoodAnalytics{
		MoodDistribution: []domain.MoodCount{},
		MoodTrends:       []domain.MoodTrend{},
		MoodStreak:       domain.MoodStreak{CurrentMood: nil, StreakDays: 0},
	}
}

func distribution(moods []DatedRecord) []domain.MoodCount {
	counts := make(map[string]int)
	for _, r := range moods {
		counts[r.Mood]++
	}

	out := make([]domain.MoodCount, 0, len(counts))
	for mood, count := range counts {
		out = append(out, domain.MoodCount{
			Mood:       mood,
			Count:      count,
			Percentage: percent(count, len(moods)),
		})
	}
	slices.SortFunc(out, func(a, b domain.MoodCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.Mood, b.Mood))
	})
	return out
}

type trendKey struct {
	day  civilDay
	mood string
}

func (e *Engine) trends(moods []DatedRecord, from, to time.Time) []domain.MoodTrend {
	counts := make(map[trendKey]int)
	for _, r := range moods {
		if within(r.CreatedAt, from, to) {
			counts[trendKey{day: e.dayOf(r.CreatedAt), mood: r.Mood}]++
		}
	}

	keys := slices.SortedFunc(maps.Keys(counts), func(a, b trendKey) int {
		return cmp.Or(cmp.Compare(a.day, b.day), strings.Compare(a.mood, b.mood))
	})
	out := make([]domain.MoodTrend, len(keys))
	for i, k := range keys {
		out[i] = domain.MoodTrend{Date: k.day.String(), Mood: k.mood, Count: counts[k]}
	}
	return out
}

func (e *Engine) weeklyAverage(moods []DatedRecord, from, to time.Time) int {
	var total, positive int
	for _, r := range moods {
		if !within(r.CreatedAt, from, to) {
			continue
		}
		total++
		if _, ok := e.positive[r.Mood]; ok {
			positive++
		}
	}
	return percent(positive, total)
}

// moodStreak expects moods sorted most recent first. Each calendar day is represented
// by the first record seen for it in that order.
func (e *Engine) moodStreak(moods []DatedRecord) domain.MoodStreak {
	current := moods[0].Mood
	streak := 0
	var last civilDay
	for i, r := range moods {
		day := e.dayOf(r.CreatedAt)
		if i > 0 && day == last {
			continue
		}
		if i > 0 && last-day > 1 {
			break
		}
		if r.Mood != current {
			break
		}
		streak++
		last = day
	}
	return domain.MoodStreak{CurrentMood: &current, StreakDays: streak}
}

func longestStreak(days map[civilDay]struct{}) int {
	if len(days) == 0 {
		return 0
	}
	sorted := slices.Sorted(maps.Keys(days))
	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// percent returns round(part/whole*100) using exact decimal arithmetic, or 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(0).
		IntPart())
}

func validate(records []DatedRecord) error {
	for _, r := range records {
		if r.CreatedAt.IsZero() {
			return fmt.Errorf("%w: record %q has no creation timestamp", apperrors.ErrMalformedInput, r.ID)
		}
	}
	return nil
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// civilDay counts calendar days since 1970-01-01, independent of DST transitions.
type civilDay int64

func (e *Engine) dayOf(t time.Time) civilDay {
	y, m, d := t.In(e.loc).Date()
	return civilDay(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func (d civilDay) String() string {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC().Format(dayLayout)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
