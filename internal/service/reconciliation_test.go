package service_test

import (
	"testing"

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

// ReconciliationServiceTestSuite defines the test suite for ReconciliationService
type ReconciliationServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockTxm              *mocks.MockTxManagerInterface
	mockMatchRepo        *mocks.MockMatchRepositoryInterface
	mockSubmissionRepo   *mocks.MockMatchResultSubmissionRepositoryInterface
	mockTeamRepo         *mocks.MockTeamRepositoryInterface
	mockLeagueMemberRepo *mocks.MockLeagueMemberRepositoryInterface
	mockEligibility      *mocks.MockEligibilityResolverInterface
	mockNotifier         *mocks.MockNotificationServiceInterface
	svc                  *service.ReconciliationService

	leagueID   uuid.UUID
	homeTeamID uuid.UUID
	awayTeamID uuid.UUID
	match      *models.Match
}

// SetupTest sets up the test suite
func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTxm = mocks.NewMockTxManagerInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockSubmissionRepo = mocks.NewMockMatchResultSubmissionRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockLeagueMemberRepo = mocks.NewMockLeagueMemberRepositoryInterface(suite.ctrl)
	suite.mockEligibility = mocks.NewMockEligibilityResolverInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotificationServiceInterface(suite.ctrl)

	suite.svc = service.NewReconciliationService(
		suite.mockTxm,
		suite.mockMatchRepo,
		suite.mockSubmissionRepo,
		suite.mockTeamRepo,
		suite.mockLeagueMemberRepo,
		suite.mockEligibility,
		suite.mockNotifier,
		validator.New(),
	)

	suite.leagueID = uuid.New()
	suite.homeTeamID = uuid.New()
	suite.awayTeamID = uuid.New()
	suite.match = &models.Match{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		LeagueID:   suite.leagueID,
		HomeTeamID: suite.homeTeamID,
		AwayTeamID: suite.awayTeamID,
		Status:     models.MatchStatusScheduled,
	}
}

// TearDownTest cleans up after each test
func (suite *ReconciliationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTransaction makes the transaction manager run the callback inline and
// hands the same submission repo back from WithTx so expectations stay on it.
func (suite *ReconciliationServiceTestSuite) expectTransaction() {
	suite.mockTxm.EXPECT().Do(gomock.Any()).DoAndReturn(func(fn func(*gorm.DB) error) error {
		return fn(nil)
	})
	suite.mockSubmissionRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockSubmissionRepo)
}

func (suite *ReconciliationServiceTestSuite) submitRequest(home, away int) *service.SubmitResultRequest {
	return &service.SubmitResultRequest{
		MatchID:   suite.match.ID,
		HomeScore: home,
		AwayScore: away,
	}
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_FirstSubmissionWaits() {
	userID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(userID, suite.match).Return(service.RoleHomeTeamMember, nil)

	suite.expectTransaction()
	suite.mockSubmissionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.MatchResultSubmission) error {
		suite.Equal(suite.homeTeamID, s.TeamID)
		suite.Equal(models.SubmissionStatusPending, s.Status)
		s.ID = uuid.New()
		return nil
	})
	suite.mockSubmissionRepo.EXPECT().GetByMatchID(suite.match.ID).Return([]models.MatchResultSubmission{
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: suite.match.ID, TeamID: suite.homeTeamID, HomeScore: 3, AwayScore: 1},
	}, nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(3, 1))

	suite.NoError(err)
	suite.False(resp.MatchUpdated)
	suite.Nil(resp.Conflict)
	suite.Equal("result recorded, waiting for opponent submission", resp.Message)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_AgreementFinalizesMatch() {
	userID := uuid.New()
	homeSubID := uuid.New()
	awaySubID := uuid.New()
	homeSubmitter := uuid.New()

	subs := []models.MatchResultSubmission{
		{BaseModel: models.BaseModel{ID: homeSubID}, MatchID: suite.match.ID, TeamID: suite.homeTeamID, SubmittingUserID: homeSubmitter, HomeScore: 2, AwayScore: 2},
		{BaseModel: models.BaseModel{ID: awaySubID}, MatchID: suite.match.ID, TeamID: suite.awayTeamID, SubmittingUserID: userID, HomeScore: 2, AwayScore: 2},
	}

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(userID, suite.match).Return(service.RoleAwayTeamMember, nil)

	suite.expectTransaction()
	suite.mockSubmissionRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockSubmissionRepo.EXPECT().GetByMatchID(suite.match.ID).Return(subs, nil)
	suite.mockMatchRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockMatchRepo)
	suite.mockMatchRepo.EXPECT().FinalizeMatch(suite.match.ID, 2, 2).Return(true, nil)
	suite.mockSubmissionRepo.EXPECT().UpdateStatus(homeSubID, models.SubmissionStatusApproved, "").Return(nil)
	suite.mockSubmissionRepo.EXPECT().UpdateStatus(awaySubID, models.SubmissionStatusApproved, "").Return(nil)

	// Both submitters get told the result is official.
	suite.mockNotifier.EXPECT().NotifyMatchFinalized(homeSubmitter, suite.match.ID, 2, 2).Return(nil)
	suite.mockNotifier.EXPECT().NotifyMatchFinalized(userID, suite.match.ID, 2, 2).Return(nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(2, 2))

	suite.NoError(err)
	suite.True(resp.MatchUpdated)
	suite.Nil(resp.Conflict)
	suite.Equal("both submissions agree, match finalized", resp.Message)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_ReversedScoresEscalateConflict() {
	userID := uuid.New()
	managerA := uuid.New()
	managerB := uuid.New()

	// The away team reports the mirror image of the home team's claim. Scores
	// are home/away-relative, so this is a disagreement.
	subs := []models.MatchResultSubmission{
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: suite.match.ID, TeamID: suite.homeTeamID, HomeScore: 5, AwayScore: 3},
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: suite.match.ID, TeamID: suite.awayTeamID, HomeScore: 3, AwayScore: 5},
	}

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(userID, suite.match).Return(service.RoleAwayTeamMember, nil)

	suite.expectTransaction()
	suite.mockSubmissionRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockSubmissionRepo.EXPECT().GetByMatchID(suite.match.ID).Return(subs, nil)

	suite.mockTeamRepo.EXPECT().GetByID(suite.homeTeamID).Return(&models.Team{BaseModel: models.BaseModel{ID: suite.homeTeamID}, Name: "Red Hawks"}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.awayTeamID).Return(&models.Team{BaseModel: models.BaseModel{ID: suite.awayTeamID}, Name: "Blue Foxes"}, nil)

	suite.mockLeagueMemberRepo.EXPECT().GetManagers(suite.leagueID).Return([]models.LeagueMember{
		{UserID: managerA}, {UserID: managerB},
	}, nil)
	// Exactly one notification per manager.
	suite.mockNotifier.EXPECT().NotifyConflict(managerA, suite.match.ID, gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().NotifyConflict(managerB, suite.match.ID, gomock.Any()).Return(nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(3, 5))

	suite.NoError(err)
	suite.False(resp.MatchUpdated)
	suite.NotNil(resp.Conflict)
	suite.Equal("Red Hawks", resp.Conflict.HomeSubmission.TeamName)
	suite.Equal("Blue Foxes", resp.Conflict.AwaySubmission.TeamName)
	suite.Equal(5, resp.Conflict.HomeSubmission.HomeScore)
	suite.Equal(3, resp.Conflict.AwaySubmission.HomeScore)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_DuplicateSubmissionRejected() {
	userID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(userID, suite.match).Return(service.RoleHomeTeamMember, nil)

	suite.expectTransaction()
	// The unique (match_id, team_id) index surfaces as a duplicated-key error.
	suite.mockSubmissionRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(1, 0))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDuplicateSubmission)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_CompletedMatchRejected() {
	userID := uuid.New()
	suite.match.Status = models.MatchStatusCompleted

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(1, 0))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMatchAlreadyCompleted)
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_CancelledMatchRejected() {
	userID := uuid.New()
	suite.match.Status = models.MatchStatusCancelled

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(1, 0))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMatchCancelled)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_MatchNotFound() {
	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.SubmitResult(uuid.New(), suite.submitRequest(1, 0))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMatchNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_StrangerForbidden() {
	userID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(userID, suite.match).Return(service.RoleNone, nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(1, 0))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotMatchParticipant)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_ManagerBypassesLedger() {
	managerID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(managerID, suite.match).Return(service.RoleLeagueManager, nil)
	// Direct finalization: no transaction, no submission insert.
	suite.mockMatchRepo.EXPECT().FinalizeMatch(suite.match.ID, 4, 0).Return(true, nil)

	resp, err := suite.svc.SubmitResult(managerID, suite.submitRequest(4, 0))

	suite.NoError(err)
	suite.True(resp.MatchUpdated)
	suite.Nil(resp.Submission)
	suite.Equal("match finalized by league manager", resp.Message)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_ManagerLosesFinalizationRace() {
	managerID := uuid.New()

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(managerID, suite.match).Return(service.RoleLeagueManager, nil)
	suite.mockMatchRepo.EXPECT().FinalizeMatch(suite.match.ID, 4, 0).Return(false, nil)

	resp, err := suite.svc.SubmitResult(managerID, suite.submitRequest(4, 0))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMatchAlreadyCompleted)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_ConcurrentFinalizationInsideTx() {
	userID := uuid.New()

	subs := []models.MatchResultSubmission{
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: suite.match.ID, TeamID: suite.homeTeamID, HomeScore: 1, AwayScore: 1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchID: suite.match.ID, TeamID: suite.awayTeamID, HomeScore: 1, AwayScore: 1},
	}

	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockEligibility.EXPECT().Resolve(userID, suite.match).Return(service.RoleAwayTeamMember, nil)

	suite.expectTransaction()
	suite.mockSubmissionRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockSubmissionRepo.EXPECT().GetByMatchID(suite.match.ID).Return(subs, nil)
	suite.mockMatchRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockMatchRepo)
	suite.mockMatchRepo.EXPECT().FinalizeMatch(suite.match.ID, 1, 1).Return(false, nil)

	resp, err := suite.svc.SubmitResult(userID, suite.submitRequest(1, 1))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMatchAlreadyCompleted)
}

func (suite *ReconciliationServiceTestSuite) TestSubmitResult_NegativeScoreFailsValidation() {
	req := suite.submitRequest(-1, 2)

	resp, err := suite.svc.SubmitResult(uuid.New(), req)

	suite.Nil(resp)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *ReconciliationServiceTestSuite) TestUpdateSubmissionStatus_ApproveFinalizesOpenMatch() {
	managerID := uuid.New()
	submission := &models.MatchResultSubmission{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MatchID:   suite.match.ID,
		TeamID:    suite.homeTeamID,
		HomeScore: 3,
		AwayScore: 0,
		Status:    models.SubmissionStatusPending,
	}

	suite.mockSubmissionRepo.EXPECT().GetByID(submission.ID).Return(submission, nil)
	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(managerID, suite.leagueID).Return(true, nil)
	suite.mockMatchRepo.EXPECT().FinalizeMatch(suite.match.ID, 3, 0).Return(true, nil)
	suite.mockSubmissionRepo.EXPECT().UpdateStatus(submission.ID, models.SubmissionStatusApproved, "looks right").Return(nil)

	resp, err := suite.svc.UpdateSubmissionStatus(managerID, submission.ID, &service.UpdateSubmissionStatusRequest{
		Status: models.SubmissionStatusApproved,
		Notes:  "looks right",
	})

	suite.NoError(err)
	suite.Equal(models.SubmissionStatusApproved, resp.Status)
	suite.Equal("looks right", resp.Notes)
}

func (suite *ReconciliationServiceTestSuite) TestUpdateSubmissionStatus_RejectDoesNotFinalize() {
	managerID := uuid.New()
	submission := &models.MatchResultSubmission{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MatchID:   suite.match.ID,
		TeamID:    suite.awayTeamID,
		Status:    models.SubmissionStatusPending,
	}

	suite.mockSubmissionRepo.EXPECT().GetByID(submission.ID).Return(submission, nil)
	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(managerID, suite.leagueID).Return(true, nil)
	suite.mockSubmissionRepo.EXPECT().UpdateStatus(submission.ID, models.SubmissionStatusRejected, "").Return(nil)

	resp, err := suite.svc.UpdateSubmissionStatus(managerID, submission.ID, &service.UpdateSubmissionStatusRequest{
		Status: models.SubmissionStatusRejected,
	})

	suite.NoError(err)
	suite.Equal(models.SubmissionStatusRejected, resp.Status)
}

func (suite *ReconciliationServiceTestSuite) TestUpdateSubmissionStatus_NonManagerForbidden() {
	callerID := uuid.New()
	submission := &models.MatchResultSubmission{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MatchID:   suite.match.ID,
	}

	suite.mockSubmissionRepo.EXPECT().GetByID(submission.ID).Return(submission, nil)
	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(callerID, suite.leagueID).Return(false, nil)

	resp, err := suite.svc.UpdateSubmissionStatus(callerID, submission.ID, &service.UpdateSubmissionStatusRequest{
		Status: models.SubmissionStatusApproved,
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotLeagueManager)
}

func (suite *ReconciliationServiceTestSuite) TestUpdateSubmissionStatus_NotFound() {
	submissionID := uuid.New()
	suite.mockSubmissionRepo.EXPECT().GetByID(submissionID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.UpdateSubmissionStatus(uuid.New(), submissionID, &service.UpdateSubmissionStatusRequest{
		Status: models.SubmissionStatusApproved,
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSubmissionNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestDeleteSubmission_BySubmitter() {
	submitterID := uuid.New()
	submission := &models.MatchResultSubmission{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		MatchID:          suite.match.ID,
		SubmittingUserID: submitterID,
	}

	suite.mockSubmissionRepo.EXPECT().GetByID(submission.ID).Return(submission, nil)
	suite.mockSubmissionRepo.EXPECT().Delete(submission.ID).Return(nil)

	suite.NoError(suite.svc.DeleteSubmission(submitterID, submission.ID))
}

func (suite *ReconciliationServiceTestSuite) TestDeleteSubmission_ByManager() {
	managerID := uuid.New()
	submission := &models.MatchResultSubmission{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		MatchID:          suite.match.ID,
		SubmittingUserID: uuid.New(),
	}

	suite.mockSubmissionRepo.EXPECT().GetByID(submission.ID).Return(submission, nil)
	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(managerID, suite.leagueID).Return(true, nil)
	suite.mockSubmissionRepo.EXPECT().Delete(submission.ID).Return(nil)

	suite.NoError(suite.svc.DeleteSubmission(managerID, submission.ID))
}

func (suite *ReconciliationServiceTestSuite) TestDeleteSubmission_StrangerForbidden() {
	callerID := uuid.New()
	submission := &models.MatchResultSubmission{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		MatchID:          suite.match.ID,
		SubmittingUserID: uuid.New(),
	}

	suite.mockSubmissionRepo.EXPECT().GetByID(submission.ID).Return(submission, nil)
	suite.mockMatchRepo.EXPECT().GetByID(suite.match.ID).Return(suite.match, nil)
	suite.mockLeagueMemberRepo.EXPECT().IsManager(callerID, suite.leagueID).Return(false, nil)

	err := suite.svc.DeleteSubmission(callerID, submission.ID)

	suite.ErrorIs(err, apperrors.ErrNotSubmissionOwner)
	suite.True(apperrors.IsAuthorization(err))
}

// TestReconciliationServiceTestSuite runs the test suite
func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
