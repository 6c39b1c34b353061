package services

import (
	portsrepo "github.com/SscSPs/parenting_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/core/stats"
	"github.com/SscSPs/parenting_journal_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Family service first: it is the authorizer every family-scoped service depends on.
	container.Family = NewFamilyService(repos.FamilyRepo)

	engine := stats.New(
		stats.WithLocation(cfg.StatsLocation),
		stats.WithPositiveMoods(cfg.PositiveMoods),
	)
	container.Stats = NewStatsService(
		repos.JournalEntryRepo,
		container.Family,
		engine,
		WithStatsCache(cfg.StatsCacheSize, cfg.StatsCacheTTL),
	)

	container.JournalEntry = NewJournalEntryService(
		repos.JournalEntryRepo,
		container.Family,
		WithStatsInvalidator(container.Stats),
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
