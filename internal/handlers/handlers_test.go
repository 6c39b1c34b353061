package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/SscSPs/parenting_journal_app/internal/handlers"
	"github.com/SscSPs/parenting_journal_app/internal/platform/config"
	"github.com/SscSPs/parenting_journal_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

const testJWTSecret = "handler-test-secret"

type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	users     *MockUserService
	tokens    *MockTokenService
	families  *MockFamilyService
	entries   *MockJournalEntryService
	stats     *MockStatsService
	userID    string
	familyID  string
	authToken string
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)
	suite.families = new(MockFamilyService)
	suite.entries = new(MockJournalEntryService)
	suite.stats = new(MockStatsService)

	cfg := &config.Config{
		JWTSecret:     testJWTSecret,
		IsProduction:  true,
		AuthRateLimit: limiter.Rate{Period: time.Minute, Limit: 1000},
	}
	container := &portssvc.ServiceContainer{
		User:         suite.users,
		Family:       suite.families,
		JournalEntry: suite.entries,
		Stats:        suite.stats,
		Token:        suite.tokens,
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))

	suite.userID = uuid.NewString()
	suite.familyID = uuid.NewString()
	token, _, err := utils.GenerateJWT(suite.userID, testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.authToken = token
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.users.AssertExpectations(suite.T())
	suite.tokens.AssertExpectations(suite.T())
	suite.families.AssertExpectations(suite.T())
	suite.entries.AssertExpectations(suite.T())
	suite.stats.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.authToken)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) familyPath(suffix string) string {
	return fmt.Sprintf("/api/v1/families/%s%s", suite.familyID, suffix)
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, suite.familyPath("/stats/journal"), nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestGetJournalStats() {
	suite.stats.On("JournalStats", mock.Anything, suite.familyID, suite.userID).Return(&domain.JournalStats{
		TotalEntries:       12,
		WeekEntries:        4,
		LongestStreak:      5,
		WeekSharedJourneys: 3,
		WeekQuickMoments:   1,
	}, nil).Once()

	w := suite.do(http.MethodGet, suite.familyPath("/stats/journal"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"totalEntries": 12,
		"weekEntries": 4,
		"longestStreak": 5,
		"weekSharedJourneys": 3,
		"weekQuickMoments": 1
	}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetMoodAnalytics() {
	happy := "😊"
	suite.stats.On("MoodAnalytics", mock.Anything, suite.familyID, suite.userID).Return(&domain.MoodAnalytics{
		MoodDistribution: []domain.MoodCount{
			{Mood: "😊", Count: 3, Percentage: 75},
			{Mood: "😢", Count: 1, Percentage: 25},
		},
		MoodTrends: []domain.MoodTrend{
			{Date: "2024-03-09", Mood: "😢", Count: 1},
			{Date: "2024-03-10", Mood: "😊", Count: 3},
		},
		WeeklyMoodAverage: 75,
		MoodStreak:        domain.MoodStreak{CurrentMood: &happy, StreakDays: 1},
	}, nil).Once()

	w := suite.do(http.MethodGet, suite.familyPath("/stats/mood"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"moodDistribution": [
			{"mood": "😊", "count": 3, "percentage": 75},
			{"mood": "😢", "count": 1, "percentage": 25}
		],
		"moodTrends": [
			{"date": "2024-03-09", "mood": "😢", "count": 1},
			{"date": "2024-03-10", "mood": "😊", "count": 3}
		],
		"weeklyMoodAverage": 75,
		"moodStreak": {"currentMood": "😊", "streakDays": 1}
	}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetMoodAnalytics_EmptySerializesArraysAndNull() {
	suite.stats.On("MoodAnalytics", mock.Anything, suite.familyID, suite.userID).Return(&domain.MoodAnalytics{}, nil).Once()

	w := suite.do(http.MethodGet, suite.familyPath("/stats/mood"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"moodDistribution": [],
		"moodTrends": [],
		"weeklyMoodAverage": 0,
		"moodStreak": {"currentMood": null, "streakDays": 0}
	}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestStatsErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not a member", err: apperrors.NewForbiddenError("not a member"), wantStatus: http.StatusForbidden},
		{name: "malformed stored entry", err: fmt.Errorf("entry e1: %w", apperrors.ErrMalformedInput), wantStatus: http.StatusUnprocessableEntity},
		{name: "database down", err: fmt.Errorf("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.stats.On("JournalStats", mock.Anything, suite.familyID, suite.userID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodGet, suite.familyPath("/stats/journal"), nil, true)

			suite.Equal(tt.wantStatus, w.Code)
			var resp handlers.ErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.NotEmpty(resp.Error)
			suite.NotContains(resp.Error, "connection refused")
		})
	}
}

func (suite *HandlersTestSuite) TestStats_InvalidFamilyID() {
	w := suite.do(http.MethodGet, "/api/v1/families/not-a-uuid/stats/mood", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateEntry() {
	mood := "😊"
	req := dto.CreateJournalEntryRequest{Title: "First steps", Content: "She walked to the sofa!", Mood: &mood, EntryType: "quick_moment"}
	created := &domain.JournalEntry{
		EntryID:      uuid.NewString(),
		FamilyID:     suite.familyID,
		AuthorUserID: suite.userID,
		Title:        req.Title,
		Content:      req.Content,
		Mood:         &mood,
		EntryType:    domain.EntryTypeQuickMoment,
	}
	suite.entries.On("CreateEntry", mock.Anything, suite.familyID, suite.userID, req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, suite.familyPath("/entries"), req, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EntryID, resp.EntryID)
	suite.Equal("quick_moment", resp.EntryType)
	suite.Require().NotNil(resp.Mood)
	suite.Equal("😊", *resp.Mood)
}

func (suite *HandlersTestSuite) TestCreateEntry_ValidationErrors() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing content", body: map[string]any{"title": "t"}},
		{name: "unknown entry type", body: map[string]any{"content": "c", "entryType": "essay"}},
		{name: "mood with whitespace", body: map[string]any{"content": "c", "mood": "so happy"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, suite.familyPath("/entries"), tt.body, true)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.entries.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListEntries_PassesPaging() {
	next := "opaque-token"
	suite.entries.On("ListEntries", mock.Anything, suite.familyID, suite.userID,
		mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
			return p.Limit == 20 && p.NextToken != nil && *p.NextToken == "abc"
		})).Return([]domain.JournalEntry{{EntryID: "e1", FamilyID: suite.familyID}}, &next, nil).Once()

	w := suite.do(http.MethodGet, suite.familyPath("/entries?nextToken=abc"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Equal("shared_journey", resp.Entries[0].EntryType)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlersTestSuite) TestListEntries_RejectsOversizedLimit() {
	w := suite.do(http.MethodGet, suite.familyPath("/entries?limit=500"), nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.entries.On("GetEntry", mock.Anything, suite.familyID, entryID, suite.userID).
		Return(nil, apperrors.NewNotFoundError("journal entry not found")).Once()

	w := suite.do(http.MethodGet, suite.familyPath("/entries/"+entryID), nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "journal entry not found"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteEntry() {
	entryID := uuid.NewString()

	suite.Run("success", func() {
		suite.entries.On("DeleteEntry", mock.Anything, suite.familyID, entryID, suite.userID).Return(nil).Once()
		w := suite.do(http.MethodDelete, suite.familyPath("/entries/"+entryID), nil, true)
		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.Run("forbidden", func() {
		suite.entries.On("DeleteEntry", mock.Anything, suite.familyID, entryID, suite.userID).
			Return(apperrors.NewForbiddenError("only the author or a parent may delete this entry")).Once()
		w := suite.do(http.MethodDelete, suite.familyPath("/entries/"+entryID), nil, true)
		suite.Equal(http.StatusForbidden, w.Code)
	})
}

func (suite *HandlersTestSuite) TestCreateFamily() {
	req := dto.CreateFamilyRequest{Name: "The Okafors"}
	suite.families.On("CreateFamily", mock.Anything, req, suite.userID).Return(&domain.Family{
		FamilyID:   suite.familyID,
		Name:       req.Name,
		InviteCode: "0123456789abcdef",
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/families", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FamilyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0123456789abcdef", resp.InviteCode)
}

func (suite *HandlersTestSuite) TestJoinFamily() {
	suite.Run("malformed invite code", func() {
		w := suite.do(http.MethodPost, "/api/v1/families/join", dto.JoinFamilyRequest{InviteCode: "nope"}, true)
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("already a member", func() {
		suite.families.On("JoinFamily", mock.Anything, "0123456789abcdef", suite.userID).
			Return(nil, apperrors.NewConflictError("already a member of this family")).Once()
		w := suite.do(http.MethodPost, "/api/v1/families/join", dto.JoinFamilyRequest{InviteCode: "0123456789abcdef"}, true)
		suite.Equal(http.StatusConflict, w.Code)
	})
}

func (suite *HandlersTestSuite) TestListFamilyMembers() {
	suite.families.On("ListFamilyMembers", mock.Anything, suite.familyID, suite.userID).Return([]domain.FamilyMember{
		{UserID: suite.userID, FamilyID: suite.familyID, UserName: "Amara", Role: domain.RoleParent},
	}, nil).Once()

	w := suite.do(http.MethodGet, suite.familyPath("/members"), nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListFamilyMembersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Members, 1)
	suite.Equal("PARENT", resp.Members[0].Role)
}

func (suite *HandlersTestSuite) TestGetMe() {
	suite.users.On("GetUserByID", mock.Anything, suite.userID).Return(&domain.User{UserID: suite.userID, Username: "amara", Name: "Amara"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("amara", resp.Username)
}

func (suite *HandlersTestSuite) TestLogin() {
	user := &domain.User{UserID: suite.userID, Username: "amara"}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	suite.Run("valid credentials", func() {
		suite.users.On("AuthenticateUser", mock.Anything, "amara", "lullaby-123").Return(user, nil).Once()
		suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed.jwt.token", expiresAt, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "amara", Password: "lullaby-123"}, false)

		suite.Equal(http.StatusOK, w.Code)
		var resp dto.LoginResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("signed.jwt.token", resp.Token)
		suite.True(expiresAt.Equal(resp.ExpiresAt))
	})

	suite.Run("wrong password", func() {
		suite.users.On("AuthenticateUser", mock.Anything, "amara", "nap-time").Return(nil, apperrors.ErrUnauthorized).Once()

		w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "amara", Password: "nap-time"}, false)

		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.JSONEq(`{"error": "Invalid username or password"}`, w.Body.String())
	})
}

func (suite *HandlersTestSuite) TestRegister_DuplicateUsername() {
	req := dto.CreateUserRequest{Username: "amara", Password: "lullaby-123", Name: "Amara"}
	suite.users.On("CreateUser", mock.Anything, req).Return(nil, apperrors.NewConflictError("username amara is already taken")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.JSONEq(`{"error": "username amara is already taken"}`, w.Body.String())
}
