//go:build integration
// +build integration

package repository

import (
	"testing"

	"league-portal-backend/internal/database/models"
	"league-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MatchRepositoryTestSuite tests the MatchRepository
type MatchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MatchRepository
	factories     *testutils.FactorySet

	league   *models.League
	homeTeam *models.Team
	awayTeam *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *MatchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMatchRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MatchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a league with two teams
func (suite *MatchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB

	suite.league = suite.factories.League.Create()
	suite.NoError(db.Create(suite.league).Error)

	suite.homeTeam = suite.factories.Team.WithLeague(suite.league.ID)
	suite.awayTeam = suite.factories.Team.WithLeague(suite.league.ID)
	suite.NoError(db.Create(suite.homeTeam).Error)
	suite.NoError(db.Create(suite.awayTeam).Error)
}

// TearDownTest runs after each test
func (suite *MatchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MatchRepositoryTestSuite) createMatch() *models.Match {
	match := suite.factories.Match.Between(suite.league.ID, suite.homeTeam.ID, suite.awayTeam.ID)
	suite.NoError(suite.repo.Create(match))
	return match
}

func (suite *MatchRepositoryTestSuite) TestCreate() {
	match := suite.factories.Match.Between(suite.league.ID, suite.homeTeam.ID, suite.awayTeam.ID)

	err := suite.repo.Create(match)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, match.ID)
	suite.Equal(models.MatchStatusScheduled, match.Status)
}

// TestCreateSameTeams exercises the distinct-teams check constraint
func (suite *MatchRepositoryTestSuite) TestCreateSameTeams() {
	match := suite.factories.Match.Between(suite.league.ID, suite.homeTeam.ID, suite.homeTeam.ID)

	err := suite.repo.Create(match)

	suite.Error(err)
}

func (suite *MatchRepositoryTestSuite) TestGetByID() {
	match := suite.createMatch()

	retrieved, err := suite.repo.GetByID(match.ID)

	suite.NoError(err)
	suite.Equal(match.ID, retrieved.ID)
	suite.Equal(suite.homeTeam.ID, retrieved.HomeTeamID)
	suite.Equal(suite.awayTeam.ID, retrieved.AwayTeamID)
	suite.Nil(retrieved.HomeScore)
	suite.Nil(retrieved.AwayScore)
}

func (suite *MatchRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

func (suite *MatchRepositoryTestSuite) TestGetByLeagueID() {
	suite.createMatch()
	suite.createMatch()

	matches, total, err := suite.repo.GetByLeagueID(suite.league.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(matches, 2)
}

func (suite *MatchRepositoryTestSuite) TestFinalizeMatch() {
	match := suite.createMatch()

	finalized, err := suite.repo.FinalizeMatch(match.ID, 3, 1)

	suite.NoError(err)
	suite.True(finalized)

	retrieved, err := suite.repo.GetByID(match.ID)
	suite.NoError(err)
	suite.Equal(models.MatchStatusCompleted, retrieved.Status)
	suite.NotNil(retrieved.HomeScore)
	suite.NotNil(retrieved.AwayScore)
	suite.Equal(3, *retrieved.HomeScore)
	suite.Equal(1, *retrieved.AwayScore)
}

// TestFinalizeMatchTwice verifies the conditional update: the second
// finalization matches zero rows and must not clobber the recorded scores
func (suite *MatchRepositoryTestSuite) TestFinalizeMatchTwice() {
	match := suite.createMatch()

	finalized, err := suite.repo.FinalizeMatch(match.ID, 3, 1)
	suite.NoError(err)
	suite.True(finalized)

	finalized, err = suite.repo.FinalizeMatch(match.ID, 0, 9)
	suite.NoError(err)
	suite.False(finalized)

	retrieved, err := suite.repo.GetByID(match.ID)
	suite.NoError(err)
	suite.Equal(3, *retrieved.HomeScore)
	suite.Equal(1, *retrieved.AwayScore)
}

func (suite *MatchRepositoryTestSuite) TestFinalizeMatchNotFound() {
	finalized, err := suite.repo.FinalizeMatch(uuid.New(), 1, 0)

	suite.NoError(err)
	suite.False(finalized)
}

func (suite *MatchRepositoryTestSuite) TestDelete() {
	match := suite.createMatch()

	suite.NoError(suite.repo.Delete(match.ID))

	_, err := suite.repo.GetByID(match.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMatchRepositoryTestSuite runs the test suite
func TestMatchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchRepositoryTestSuite))
}
