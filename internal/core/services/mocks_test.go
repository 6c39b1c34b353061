package services_test

import (
	"context"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock FamilyRepository ---
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	args := m.Called(ctx, familyID)
	var family *domain.Family
	if args.Get(0) != nil {
		family = args.Get(0).(*domain.Family)
	}
	return family, args.Error(1)
}

func (m *MockFamilyRepository) FindFamilyByInviteCode(ctx context.Context, inviteCode string) (*domain.Family, error) {
	args := m.Called(ctx, inviteCode)
	var family *domain.Family
	if args.Get(0) != nil {
		family = args.Get(0).(*domain.Family)
	}
	return family, args.Error(1)
}

func (m *MockFamilyRepository) ListFamiliesByUserID(ctx context.Context, userID string) ([]domain.Family, error) {
	args := m.Called(ctx, userID)
	var families []domain.Family
	if args.Get(0) != nil {
		families = args.Get(0).([]domain.Family)
	}
	return families, args.Error(1)
}

func (m *MockFamilyRepository) SaveFamily(ctx context.Context, family domain.Family, owner domain.FamilyMember) error {
	args := m.Called(ctx, family, owner)
	return args.Error(0)
}

func (m *MockFamilyRepository) AddFamilyMember(ctx context.Context, member domain.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyRepository) FindFamilyMember(ctx context.Context, userID, familyID string) (*domain.FamilyMember, error) {
	args := m.Called(ctx, userID, familyID)
	var member *domain.FamilyMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.FamilyMember)
	}
	return member, args.Error(1)
}

func (m *MockFamilyRepository) ListFamilyMembers(ctx context.Context, familyID string) ([]domain.FamilyMember, error) {
	args := m.Called(ctx, familyID)
	var members []domain.FamilyMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.FamilyMember)
	}
	return members, args.Error(1)
}

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

func (m *MockJournalEntryRepository) FindJournalEntryByID(ctx context.Context, familyID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, familyID, entryID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalEntryRepository) ListJournalEntriesByFamily(ctx context.Context, familyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, familyID, limit, nextToken)
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

func (m *MockJournalEntryRepository) ListJournalEntriesForStats(ctx context.Context, familyID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, familyID)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	return entries, args.Error(1)
}

func (m *MockJournalEntryRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) DeleteJournalEntry(ctx context.Context, familyID, entryID string) error {
	args := m.Called(ctx, familyID, entryID)
	return args.Error(0)
}

// --- Mock FamilyAuthorizer ---
type MockFamilyAuthorizer struct {
	mock.Mock
}

func (m *MockFamilyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, familyID string, required domain.FamilyRole) (*domain.FamilyMember, error) {
	args := m.Called(ctx, userID, familyID, required)
	var member *domain.FamilyMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.FamilyMember)
	}
	return member, args.Error(1)
}

// --- Mock StatsInvalidator ---
type MockStatsInvalidator struct {
	mock.Mock
}

func (m *MockStatsInvalidator) Invalidate(familyID string) {
	m.Called(familyID)
}
