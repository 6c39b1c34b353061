package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/parenting_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/core/stats"
	"github.com/SscSPs/parenting_journal_app/internal/observability"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	statsKindJournal = "journal"
	statsKindMood    = "mood"

	defaultStatsCacheSize = 1024
	defaultStatsCacheTTL  = 5 * time.Minute
)

// statsService computes family statistics with the stats engine and caches the results per family.
// The cache TTL bounds how stale the rolling 7 and 30 day windows can get between writes.
type statsService struct {
	BaseService
	entryRepo portsrepo.JournalEntryReader
	engine    *stats.Engine

	journalCache *expirable.LRU[string, domain.JournalStats]
	moodCache    *expirable.LRU[string, domain.MoodAnalytics]

	// generations guards against storing a result computed from entries that were
	// modified while the computation ran.
	mu          sync.Mutex
	generations map[string]uint64
}

type statsServiceConfig struct {
	cacheSize int
	cacheTTL  time.Duration
}

// StatsServiceOption is a functional option for configuring the stats service
type StatsServiceOption func(*statsServiceConfig)

// WithStatsCache sets the number of families cached and how long results live.
func WithStatsCache(size int, ttl time.Duration) StatsServiceOption {
	return func(c *statsServiceConfig) {
		if size > 0 {
			c.cacheSize = size
		}
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewStatsService creates a stats service backed by entryRepo and engine.
func NewStatsService(
	entryRepo portsrepo.JournalEntryReader,
	authorizer portssvc.FamilyAuthorizerSvc,
	engine *stats.Engine,
	options ...StatsServiceOption,
) portssvc.StatsSvcFacade {
	cfg := statsServiceConfig{cacheSize: defaultStatsCacheSize, cacheTTL: defaultStatsCacheTTL}
	for _, option := range options {
		option(&cfg)
	}
	return &statsService{
		BaseService:  BaseService{FamilyAuthorizer: authorizer},
		entryRepo:    entryRepo,
		engine:       engine,
		journalCache: expirable.NewLRU[string, domain.JournalStats](cfg.cacheSize, nil, cfg.cacheTTL),
		moodCache:    expirable.NewLRU[string, domain.MoodAnalytics](cfg.cacheSize, nil, cfg.cacheTTL),
		generations:  make(map[string]uint64),
	}
}

var _ portssvc.StatsSvcFacade = (*statsService)(nil)

func (s *statsService) JournalStats(ctx context.Context, familyID, userID string) (*domain.JournalStats, error) {
	if _, err := s.AuthorizeUser(ctx, userID, familyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return cachedCompute(ctx, s, s.journalCache, statsKindJournal, familyID, s.engine.JournalStats)
}

func (s *statsService) MoodAnalytics(ctx context.Context, familyID, userID string) (*domain.MoodAnalytics, error) {
	if _, err := s.AuthorizeUser(ctx, userID, familyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return cachedCompute(ctx, s, s.moodCache, statsKindMood, familyID, s.engine.MoodAnalytics)
}

// Invalidate drops every cached result of familyID.
func (s *statsService) Invalidate(familyID string) {
	s.mu.Lock()
	s.generations[familyID]++
	s.mu.Unlock()

	s.journalCache.Remove(familyID)
	s.moodCache.Remove(familyID)
}

func (s *statsService) generation(familyID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[familyID]
}

func cachedCompute[T any](
	ctx context.Context,
	s *statsService,
	cache *expirable.LRU[string, T],
	kind, familyID string,
	compute func([]stats.DatedRecord) (T, error),
) (*T, error) {
	if v, ok := cache.Get(familyID); ok {
		observability.RecordStatsCacheLookup(kind, true)
		return &v, nil
	}
	observability.RecordStatsCacheLookup(kind, false)

	gen := s.generation(familyID)
	start := time.Now()

	entries, err := s.entryRepo.ListJournalEntriesForStats(ctx, familyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for stats",
			slog.String("family_id", familyID),
			slog.String("kind", kind))
		return nil, err
	}
	result, err := compute(stats.FromJournalEntries(entries))
	if err != nil {
		s.LogError(ctx, err, "Stats computation failed",
			slog.String("family_id", familyID),
			slog.String("kind", kind))
		return nil, err
	}

	elapsed := time.Since(start)
	observability.ObserveStatsComputation(kind, len(entries), elapsed)
	s.LogDebug(ctx, "Stats computed",
		slog.String("family_id", familyID),
		slog.String("kind", kind),
		slog.Int("records", len(entries)),
		slog.Duration("elapsed", elapsed))

	s.mu.Lock()
	if s.generations[familyID] == gen {
		cache.Add(familyID, result)
	}
	s.mu.Unlock()
	return &result, nil
}
