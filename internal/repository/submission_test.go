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

// MatchResultSubmissionRepositoryTestSuite tests the MatchResultSubmissionRepository
type MatchResultSubmissionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MatchResultSubmissionRepository
	factories     *testutils.FactorySet

	league   *models.League
	homeTeam *models.Team
	awayTeam *models.Team
	user     *models.User
	match    *models.Match
}

// SetupSuite runs before all tests in the suite
func (suite *MatchResultSubmissionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMatchResultSubmissionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MatchResultSubmissionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds the fixture rows submissions depend on
func (suite *MatchResultSubmissionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB

	suite.league = suite.factories.League.Create()
	suite.NoError(db.Create(suite.league).Error)

	suite.homeTeam = suite.factories.Team.WithLeague(suite.league.ID)
	suite.awayTeam = suite.factories.Team.WithLeague(suite.league.ID)
	suite.NoError(db.Create(suite.homeTeam).Error)
	suite.NoError(db.Create(suite.awayTeam).Error)

	suite.user = suite.factories.User.Create()
	suite.NoError(db.Create(suite.user).Error)

	suite.match = suite.factories.Match.Between(suite.league.ID, suite.homeTeam.ID, suite.awayTeam.ID)
	suite.NoError(db.Create(suite.match).Error)
}

// TearDownTest runs after each test
func (suite *MatchResultSubmissionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestCreate() {
	submission := suite.factories.Submission.ForMatch(suite.match.ID, suite.homeTeam.ID, suite.user.ID)

	err := suite.repo.Create(submission)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, submission.ID)
	suite.NotZero(submission.CreatedAt)
}

// TestCreateDuplicateTeam exercises the unique (match_id, team_id) index. The
// second insert from the same team must fail as a translated duplicated-key
// error, not overwrite the first.
func (suite *MatchResultSubmissionRepositoryTestSuite) TestCreateDuplicateTeam() {
	first := suite.factories.Submission.WithScores(suite.match.ID, suite.homeTeam.ID, suite.user.ID, 2, 1)
	suite.NoError(suite.repo.Create(first))

	otherUser := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherUser).Error)

	second := suite.factories.Submission.WithScores(suite.match.ID, suite.homeTeam.ID, otherUser.ID, 3, 0)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateBothTeams verifies the index permits one submission per team
func (suite *MatchResultSubmissionRepositoryTestSuite) TestCreateBothTeams() {
	home := suite.factories.Submission.ForMatch(suite.match.ID, suite.homeTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(home))

	away := suite.factories.Submission.ForMatch(suite.match.ID, suite.awayTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(away))

	submissions, err := suite.repo.GetByMatchID(suite.match.ID)
	suite.NoError(err)
	suite.Len(submissions, 2)
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestGetByID() {
	submission := suite.factories.Submission.ForMatch(suite.match.ID, suite.homeTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(submission))

	retrieved, err := suite.repo.GetByID(submission.ID)

	suite.NoError(err)
	suite.Equal(submission.ID, retrieved.ID)
	suite.Equal(submission.HomeScore, retrieved.HomeScore)
	suite.Equal(submission.AwayScore, retrieved.AwayScore)
	suite.Equal(models.SubmissionStatusPending, retrieved.Status)
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestGetByMatchIDOrdersOldestFirst() {
	home := suite.factories.Submission.ForMatch(suite.match.ID, suite.homeTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(home))

	away := suite.factories.Submission.ForMatch(suite.match.ID, suite.awayTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(away))

	submissions, err := suite.repo.GetByMatchID(suite.match.ID)

	suite.NoError(err)
	suite.Len(submissions, 2)
	suite.True(!submissions[0].CreatedAt.After(submissions[1].CreatedAt))
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestUpdateStatus() {
	submission := suite.factories.Submission.ForMatch(suite.match.ID, suite.homeTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(submission))

	err := suite.repo.UpdateStatus(submission.ID, models.SubmissionStatusApproved, "verified")
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(submission.ID)
	suite.NoError(err)
	suite.Equal(models.SubmissionStatusApproved, retrieved.Status)
	suite.Equal("verified", retrieved.Notes)
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestUpdateStatusNotFound() {
	err := suite.repo.UpdateStatus(uuid.New(), models.SubmissionStatusRejected, "")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MatchResultSubmissionRepositoryTestSuite) TestDelete() {
	submission := suite.factories.Submission.ForMatch(suite.match.ID, suite.homeTeam.ID, suite.user.ID)
	suite.NoError(suite.repo.Create(submission))

	suite.NoError(suite.repo.Delete(submission.ID))

	_, err := suite.repo.GetByID(submission.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMatchResultSubmissionRepositoryTestSuite runs the test suite
func TestMatchResultSubmissionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchResultSubmissionRepositoryTestSuite))
}
