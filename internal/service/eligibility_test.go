package service_test

import (
	"errors"
	"testing"

	"league-portal-backend/internal/database/models"
	"league-portal-backend/internal/mocks"
	"league-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EligibilityResolverTestSuite defines the test suite for EligibilityResolver
type EligibilityResolverTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockTeamMemberRepo   *mocks.MockTeamMemberRepositoryInterface
	mockLeagueMemberRepo *mocks.MockLeagueMemberRepositoryInterface
	resolver             *service.EligibilityResolver

	userID uuid.UUID
	match  *models.Match
}

// SetupTest sets up the test suite
func (suite *EligibilityResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockLeagueMemberRepo = mocks.NewMockLeagueMemberRepositoryInterface(suite.ctrl)
	suite.resolver = service.NewEligibilityResolver(suite.mockTeamMemberRepo, suite.mockLeagueMemberRepo)

	suite.userID = uuid.New()
	suite.match = &models.Match{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		LeagueID:   uuid.New(),
		HomeTeamID: uuid.New(),
		AwayTeamID: uuid.New(),
		Status:     models.MatchStatusScheduled,
	}
}

// TearDownTest cleans up after each test
func (suite *EligibilityResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EligibilityResolverTestSuite) TestResolve_HomeTeamMember() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(true, nil)

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.NoError(err)
	suite.Equal(service.RoleHomeTeamMember, role)
}

func (suite *EligibilityResolverTestSuite) TestResolve_AwayTeamMember() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(false, nil)
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.AwayTeamID).Return(true, nil)

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.NoError(err)
	suite.Equal(service.RoleAwayTeamMember, role)
}

func (suite *EligibilityResolverTestSuite) TestResolve_LeagueManager() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(false, nil)
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.AwayTeamID).Return(false, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(suite.userID, suite.match.LeagueID).Return(true, nil)

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.NoError(err)
	suite.Equal(service.RoleLeagueManager, role)
}

func (suite *EligibilityResolverTestSuite) TestResolve_None() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(false, nil)
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.AwayTeamID).Return(false, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(suite.userID, suite.match.LeagueID).Return(false, nil)

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.NoError(err)
	suite.Equal(service.RoleNone, role)
}

// Home-team membership short-circuits the remaining checks. A manager who also
// plays for the home side submits as a team member, not with manager powers.
func (suite *EligibilityResolverTestSuite) TestResolve_HomeMembershipWinsOverManager() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(true, nil)

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.NoError(err)
	suite.Equal(service.RoleHomeTeamMember, role)
}

func (suite *EligibilityResolverTestSuite) TestResolve_MembershipLookupError() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(false, errors.New("db down"))

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.Error(err)
	suite.Equal(service.RoleNone, role)
	suite.Contains(err.Error(), "failed to check home team membership")
}

func (suite *EligibilityResolverTestSuite) TestResolve_ManagerLookupError() {
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.HomeTeamID).Return(false, nil)
	suite.mockTeamMemberRepo.EXPECT().IsActiveMember(suite.userID, suite.match.AwayTeamID).Return(false, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(suite.userID, suite.match.LeagueID).Return(false, errors.New("db down"))

	role, err := suite.resolver.Resolve(suite.userID, suite.match)

	suite.Error(err)
	suite.Equal(service.RoleNone, role)
	suite.Contains(err.Error(), "failed to check league manager role")
}

// TestEligibilityResolverTestSuite runs the test suite
func TestEligibilityResolverTestSuite(t *testing.T) {
	suite.Run(t, new(EligibilityResolverTestSuite))
}
