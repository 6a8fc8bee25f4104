package service_test

import (
	"testing"
	"time"

	"league-portal-backend/internal/database/models"
	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/mocks"
	"league-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MatchServiceTestSuite defines the test suite for MatchService
type MatchServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockMatchRepositoryInterface
	mockLeagueRepo     *mocks.MockLeagueRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockLocationRepo   *mocks.MockLocationRepositoryInterface
	mockSubmissionRepo *mocks.MockMatchResultSubmissionRepositoryInterface
	svc                *service.MatchService

	leagueID   uuid.UUID
	homeTeamID uuid.UUID
	awayTeamID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MatchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockLeagueRepo = mocks.NewMockLeagueRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockLocationRepo = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.mockSubmissionRepo = mocks.NewMockMatchResultSubmissionRepositoryInterface(suite.ctrl)

	suite.svc = service.NewMatchService(
		suite.mockRepo,
		suite.mockLeagueRepo,
		suite.mockTeamRepo,
		suite.mockLocationRepo,
		suite.mockSubmissionRepo,
		validator.New(),
	)

	suite.leagueID = uuid.New()
	suite.homeTeamID = uuid.New()
	suite.awayTeamID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *MatchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchServiceTestSuite) createRequest() *service.CreateMatchRequest {
	return &service.CreateMatchRequest{
		LeagueID:    suite.leagueID,
		HomeTeamID:  suite.homeTeamID,
		AwayTeamID:  suite.awayTeamID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}
}

func (suite *MatchServiceTestSuite) teamInLeague(teamID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: teamID},
		LeagueID:  suite.leagueID,
		Name:      "Team " + teamID.String()[:8],
	}
}

func (suite *MatchServiceTestSuite) TestCreate_Success() {
	req := suite.createRequest()

	suite.mockLeagueRepo.EXPECT().GetByID(suite.leagueID).Return(&models.League{BaseModel: models.BaseModel{ID: suite.leagueID}}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.homeTeamID).Return(suite.teamInLeague(suite.homeTeamID), nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.awayTeamID).Return(suite.teamInLeague(suite.awayTeamID), nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(match *models.Match) error {
		suite.Equal(models.MatchStatusScheduled, match.Status)
		match.ID = uuid.New()
		return nil
	})

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.Equal(suite.leagueID, resp.LeagueID)
	suite.Equal(models.MatchStatusScheduled, resp.Status)
	suite.Nil(resp.HomeScore)
	suite.Nil(resp.AwayScore)
}

func (suite *MatchServiceTestSuite) TestCreate_SameTeam() {
	req := suite.createRequest()
	req.AwayTeamID = req.HomeTeamID

	resp, err := suite.svc.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSameTeamMatch)
}

func (suite *MatchServiceTestSuite) TestCreate_LeagueNotFound() {
	req := suite.createRequest()

	suite.mockLeagueRepo.EXPECT().GetByID(suite.leagueID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLeagueNotFound)
}

func (suite *MatchServiceTestSuite) TestCreate_TeamFromDifferentLeague() {
	req := suite.createRequest()

	foreignTeam := suite.teamInLeague(suite.awayTeamID)
	foreignTeam.LeagueID = uuid.New()

	suite.mockLeagueRepo.EXPECT().GetByID(suite.leagueID).Return(&models.League{BaseModel: models.BaseModel{ID: suite.leagueID}}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.homeTeamID).Return(suite.teamInLeague(suite.homeTeamID), nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.awayTeamID).Return(foreignTeam, nil)

	resp, err := suite.svc.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamsNotInLeague)
}

func (suite *MatchServiceTestSuite) TestCreate_LocationNotFound() {
	req := suite.createRequest()
	locationID := uuid.New()
	req.LocationID = &locationID

	suite.mockLeagueRepo.EXPECT().GetByID(suite.leagueID).Return(&models.League{BaseModel: models.BaseModel{ID: suite.leagueID}}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.homeTeamID).Return(suite.teamInLeague(suite.homeTeamID), nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.awayTeamID).Return(suite.teamInLeague(suite.awayTeamID), nil)
	suite.mockLocationRepo.EXPECT().GetByID(locationID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)
}

func (suite *MatchServiceTestSuite) TestGetByID_NotFound() {
	matchID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(matchID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByID(matchID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
}

func (suite *MatchServiceTestSuite) TestUpdate_CompletedMatchImmutable() {
	matchID := uuid.New()
	newTime := time.Now().Add(72 * time.Hour)

	suite.mockRepo.EXPECT().GetByID(matchID).Return(&models.Match{
		BaseModel: models.BaseModel{ID: matchID},
		LeagueID:  suite.leagueID,
		Status:    models.MatchStatusCompleted,
	}, nil)

	resp, err := suite.svc.Update(matchID, &service.UpdateMatchRequest{ScheduledAt: &newTime})

	suite.Nil(resp)
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *MatchServiceTestSuite) TestUpdate_Reschedule() {
	matchID := uuid.New()
	newTime := time.Now().Add(72 * time.Hour)

	suite.mockRepo.EXPECT().GetByID(matchID).Return(&models.Match{
		BaseModel:  matchBase(matchID),
		LeagueID:   suite.leagueID,
		HomeTeamID: suite.homeTeamID,
		AwayTeamID: suite.awayTeamID,
		Status:     models.MatchStatusScheduled,
	}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(match *models.Match) error {
		suite.Equal(newTime, match.ScheduledAt)
		return nil
	})

	resp, err := suite.svc.Update(matchID, &service.UpdateMatchRequest{ScheduledAt: &newTime})

	suite.NoError(err)
	suite.Equal(newTime.Format(time.RFC3339), resp.ScheduledAt)
}

func (suite *MatchServiceTestSuite) TestDelete_NotFound() {
	matchID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(matchID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(matchID)

	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
}

func (suite *MatchServiceTestSuite) TestGetSubmissions() {
	matchID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(matchID).Return(&models.Match{BaseModel: matchBase(matchID)}, nil)
	suite.mockSubmissionRepo.EXPECT().GetByMatchID(matchID).Return([]models.MatchResultSubmission{
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: matchID, HomeScore: 2, AwayScore: 2},
	}, nil)

	submissions, err := suite.svc.GetSubmissions(matchID)

	suite.NoError(err)
	suite.Len(submissions, 1)
	suite.Equal(matchID, submissions[0].MatchID)
}

func matchBase(id uuid.UUID) models.BaseModel {
	return models.BaseModel{ID: id}
}

// TestMatchServiceTestSuite runs the test suite
func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}
