package services_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/core/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var inviteCodePattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

type FamilyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFamilyRepository
	service  portssvc.FamilySvcFacade
	ctx      context.Context
	userID   string
	familyID string
}

func (suite *FamilyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFamilyRepository)
	suite.service = services.NewFamilyService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
	suite.familyID = uuid.NewString()
}

func TestFamilyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FamilyServiceTestSuite))
}

func (suite *FamilyServiceTestSuite) TestCreateFamily_CreatorBecomesParent() {
	suite.mockRepo.On("SaveFamily", suite.ctx,
		mock.MatchedBy(func(f domain.Family) bool {
			return f.Name == "The Okafors" && inviteCodePattern.MatchString(f.InviteCode) && f.CreatedBy == suite.userID
		}),
		mock.MatchedBy(func(m domain.FamilyMember) bool {
			return m.UserID == suite.userID && m.Role == domain.RoleParent
		}),
	).Return(nil).Once()

	family, err := suite.service.CreateFamily(suite.ctx, dto.CreateFamilyRequest{Name: "The Okafors"}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(family.FamilyID)
	suite.Regexp(inviteCodePattern, family.InviteCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FamilyServiceTestSuite) TestCreateFamily_RepositoryError() {
	dbErr := errors.New("connection reset")
	suite.mockRepo.On("SaveFamily", suite.ctx, mock.Anything, mock.Anything).Return(dbErr).Once()

	family, err := suite.service.CreateFamily(suite.ctx, dto.CreateFamilyRequest{Name: "x"}, suite.userID)

	suite.Nil(family)
	suite.ErrorIs(err, dbErr)
}

func (suite *FamilyServiceTestSuite) TestJoinFamily() {
	family := &domain.Family{FamilyID: suite.familyID, Name: "The Okafors", InviteCode: "0123456789abcdef"}

	suite.Run("joins as caregiver", func() {
		suite.mockRepo.On("FindFamilyByInviteCode", suite.ctx, "0123456789abcdef").Return(family, nil).Once()
		suite.mockRepo.On("AddFamilyMember", suite.ctx, mock.MatchedBy(func(m domain.FamilyMember) bool {
			return m.UserID == suite.userID && m.FamilyID == suite.familyID && m.Role == domain.RoleCaregiver
		})).Return(nil).Once()

		joined, err := suite.service.JoinFamily(suite.ctx, "0123456789abcdef", suite.userID)
		suite.Require().NoError(err)
		suite.Equal(suite.familyID, joined.FamilyID)
	})

	suite.Run("already a member", func() {
		suite.mockRepo.On("FindFamilyByInviteCode", suite.ctx, "0123456789abcdef").Return(family, nil).Once()
		suite.mockRepo.On("AddFamilyMember", suite.ctx, mock.Anything).Return(apperrors.NewConflictError("already a member")).Once()

		_, err := suite.service.JoinFamily(suite.ctx, "0123456789abcdef", suite.userID)
		suite.ErrorIs(err, apperrors.ErrDuplicate)
	})

	suite.Run("unknown code", func() {
		suite.mockRepo.On("FindFamilyByInviteCode", suite.ctx, "ffffffffffffffff").Return(nil, apperrors.NewNotFoundError("family not found")).Once()

		_, err := suite.service.JoinFamily(suite.ctx, "ffffffffffffffff", suite.userID)
		suite.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (suite *FamilyServiceTestSuite) TestAuthorizeUserAction() {
	tests := []struct {
		name     string
		role     domain.FamilyRole
		notFound bool
		required domain.FamilyRole
		wantErr  error
	}{
		{name: "parent may do parent things", role: domain.RoleParent, required: domain.RoleParent},
		{name: "parent may write", role: domain.RoleParent, required: domain.RoleCaregiver},
		{name: "caregiver may write", role: domain.RoleCaregiver, required: domain.RoleCaregiver},
		{name: "caregiver may not administer", role: domain.RoleCaregiver, required: domain.RoleParent, wantErr: apperrors.ErrForbidden},
		{name: "read-only may read", role: domain.RoleReadOnly, required: domain.RoleReadOnly},
		{name: "read-only may not write", role: domain.RoleReadOnly, required: domain.RoleCaregiver, wantErr: apperrors.ErrForbidden},
		{name: "non-member is forbidden", notFound: true, required: domain.RoleReadOnly, wantErr: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			call := suite.mockRepo.On("FindFamilyMember", suite.ctx, suite.userID, suite.familyID)
			if tt.notFound {
				call.Return(nil, apperrors.NewNotFoundError("membership not found")).Once()
			} else {
				call.Return(&domain.FamilyMember{UserID: suite.userID, FamilyID: suite.familyID, Role: tt.role}, nil).Once()
			}

			member, err := suite.service.AuthorizeUserAction(suite.ctx, suite.userID, suite.familyID, tt.required)
			if tt.wantErr != nil {
				suite.ErrorIs(err, tt.wantErr)
				suite.NotErrorIs(err, apperrors.ErrNotFound)
				suite.Nil(member)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tt.role, member.Role)
		})
	}
}

func (suite *FamilyServiceTestSuite) TestListFamilyMembers_RequiresMembership() {
	suite.mockRepo.On("FindFamilyMember", suite.ctx, suite.userID, suite.familyID).
		Return(nil, apperrors.NewNotFoundError("membership not found")).Once()

	members, err := suite.service.ListFamilyMembers(suite.ctx, suite.familyID, suite.userID)

	suite.Nil(members)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListFamilyMembers", mock.Anything, mock.Anything)
}

func (suite *FamilyServiceTestSuite) TestListUserFamilies_EmptyIsNotNil() {
	suite.mockRepo.On("ListFamiliesByUserID", suite.ctx, suite.userID).Return(nil, nil).Once()

	families, err := suite.service.ListUserFamilies(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(families)
	suite.Empty(families)
}
