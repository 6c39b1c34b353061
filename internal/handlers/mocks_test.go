package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock TokenSvcFacade ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock FamilySvcFacade ---
type MockFamilyService struct {
	mock.Mock
}

func (m *MockFamilyService) ListUserFamilies(ctx context.Context, userID string) ([]domain.Family, error) {
	args := m.Called(ctx, userID)
	var families []domain.Family
	if args.Get(0) != nil {
		families = args.Get(0).([]domain.Family)
	}
	return families, args.Error(1)
}

func (m *MockFamilyService) ListFamilyMembers(ctx context.Context, familyID, requestingUserID string) ([]domain.FamilyMember, error) {
	args := m.Called(ctx, familyID, requestingUserID)
	var members []domain.FamilyMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.FamilyMember)
	}
	return members, args.Error(1)
}

func (m *MockFamilyService) CreateFamily(ctx context.Context, req dto.CreateFamilyRequest, creatorUserID string) (*domain.Family, error) {
	args := m.Called(ctx, req, creatorUserID)
	var family *domain.Family
	if args.Get(0) != nil {
		family = args.Get(0).(*domain.Family)
	}
	return family, args.Error(1)
}

func (m *MockFamilyService) JoinFamily(ctx context.Context, inviteCode, userID string) (*domain.Family, error) {
	args := m.Called(ctx, inviteCode, userID)
	var family *domain.Family
	if args.Get(0) != nil {
		family = args.Get(0).(*domain.Family)
	}
	return family, args.Error(1)
}

func (m *MockFamilyService) AuthorizeUserAction(ctx context.Context, userID, familyID string, required domain.FamilyRole) (*domain.FamilyMember, error) {
	args := m.Called(ctx, userID, familyID, required)
	var member *domain.FamilyMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.FamilyMember)
	}
	return member, args.Error(1)
}

// --- Mock JournalEntrySvcFacade ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) GetEntry(ctx context.Context, familyID, entryID, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, familyID, entryID, userID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalEntryService) ListEntries(ctx context.Context, familyID, userID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, familyID, userID, params)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockJournalEntryService) CreateEntry(ctx context.Context, familyID, userID string, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, familyID, userID, req)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalEntryService) DeleteEntry(ctx context.Context, familyID, entryID, userID string) error {
	args := m.Called(ctx, familyID, entryID, userID)
	return args.Error(0)
}

// --- Mock StatsSvcFacade ---
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) JournalStats(ctx context.Context, familyID, userID string) (*domain.JournalStats, error) {
	args := m.Called(ctx, familyID, userID)
	var stats *domain.JournalStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.JournalStats)
	}
	return stats, args.Error(1)
}

func (m *MockStatsService) MoodAnalytics(ctx context.Context, familyID, userID string) (*domain.MoodAnalytics, error) {
	args := m.Called(ctx, familyID, userID)
	var analytics *domain.MoodAnalytics
	if args.Get(0) != nil {
		analytics = args.Get(0).(*domain.MoodAnalytics)
	}
	return analytics, args.Error(1)
}

func (m *MockStatsService) Invalidate(familyID string) {
	m.Called(familyID)
}
