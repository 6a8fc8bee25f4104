package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"league-portal-backend/internal/api/handlers"
	"league-portal-backend/internal/database/models"
	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/mocks"
	"league-portal-backend/internal/service"
	"league-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SubmissionHandlerTestSuite defines the test suite for SubmissionHandler
type SubmissionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReconciliationServiceInterface
	handler     *handlers.SubmissionHandler
	http        *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *SubmissionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReconciliationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSubmissionHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.http = testutils.SetupHTTPTest().WithUser(suite.userID.String())
	suite.http.Router.POST("/matches/:id/results", suite.handler.SubmitResult)
	suite.http.Router.PATCH("/submissions/:id/status", suite.handler.UpdateSubmissionStatus)
	suite.http.Router.DELETE("/submissions/:id", suite.handler.DeleteSubmission)
}

// TearDownTest cleans up after each test
func (suite *SubmissionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubmissionHandlerTestSuite) TestSubmitResult_Created() {
	matchID := uuid.New()
	body := map[string]any{"home_team_score": 2, "away_team_score": 1}

	suite.mockService.EXPECT().
		SubmitResult(suite.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.SubmitResultRequest) (*service.SubmitResultResponse, error) {
			suite.Equal(matchID, req.MatchID)
			suite.Equal(2, req.HomeScore)
			suite.Equal(1, req.AwayScore)
			return &service.SubmitResultResponse{
				Message: "result recorded, waiting for opponent submission",
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/matches/"+matchID.String()+"/results", body)

	var resp service.SubmitResultResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.False(resp.MatchUpdated)
	suite.Equal("result recorded, waiting for opponent submission", resp.Message)
}

func (suite *SubmissionHandlerTestSuite) TestSubmitResult_InvalidMatchID() {
	body := map[string]any{"home_team_score": 1, "away_team_score": 0}

	recorder := suite.http.MakeRequest(http.MethodPost, "/matches/not-a-uuid/results", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid match ID")
}

func (suite *SubmissionHandlerTestSuite) TestSubmitResult_ErrorMapping() {
	matchID := uuid.New()
	body := map[string]any{"home_team_score": 1, "away_team_score": 0}

	testCases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "match not found maps to 404",
			serviceErr: apperrors.ErrMatchNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-participant maps to 403",
			serviceErr: apperrors.ErrNotMatchParticipant,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "duplicate submission maps to 409",
			serviceErr: apperrors.ErrDuplicateSubmission,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "completed match maps to 422",
			serviceErr: apperrors.ErrMatchAlreadyCompleted,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "cancelled match maps to 422",
			serviceErr: apperrors.ErrMatchCancelled,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unexpected error maps to 500",
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().
				SubmitResult(suite.userID, gomock.Any()).
				Return(nil, tc.serviceErr)

			recorder := suite.http.MakeRequest(http.MethodPost, "/matches/"+matchID.String()+"/results", body)

			suite.Equal(tc.wantStatus, recorder.Code)
		})
	}
}

func (suite *SubmissionHandlerTestSuite) TestSubmitResult_MissingUserID() {
	// No identity middleware: the handler must reject before touching the service.
	bare := testutils.SetupHTTPTest()
	bare.Router.POST("/matches/:id/results", suite.handler.SubmitResult)

	body := map[string]any{"home_team_score": 1, "away_team_score": 0}
	recorder := bare.MakeRequest(http.MethodPost, "/matches/"+uuid.NewString()+"/results", body)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *SubmissionHandlerTestSuite) TestUpdateSubmissionStatus_Approved() {
	submissionID := uuid.New()
	body := map[string]any{"status": "approved", "notes": "confirmed with both captains"}

	suite.mockService.EXPECT().
		UpdateSubmissionStatus(suite.userID, submissionID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.UpdateSubmissionStatusRequest) (*service.SubmissionResponse, error) {
			suite.Equal(models.SubmissionStatusApproved, req.Status)
			return &service.SubmissionResponse{
				ID:     submissionID,
				Status: models.SubmissionStatusApproved,
				Notes:  req.Notes,
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPatch, "/submissions/"+submissionID.String()+"/status", body)

	var resp service.SubmissionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(models.SubmissionStatusApproved, resp.Status)
	suite.Equal("confirmed with both captains", resp.Notes)
}

func (suite *SubmissionHandlerTestSuite) TestUpdateSubmissionStatus_NonManagerForbidden() {
	submissionID := uuid.New()

	suite.mockService.EXPECT().
		UpdateSubmissionStatus(suite.userID, submissionID, gomock.Any()).
		Return(nil, apperrors.ErrNotLeagueManager)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/submissions/"+submissionID.String()+"/status", map[string]any{"status": "rejected"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not a manager")
}

func (suite *SubmissionHandlerTestSuite) TestUpdateSubmissionStatus_NotFound() {
	submissionID := uuid.New()

	suite.mockService.EXPECT().
		UpdateSubmissionStatus(suite.userID, submissionID, gomock.Any()).
		Return(nil, apperrors.ErrSubmissionNotFound)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/submissions/"+submissionID.String()+"/status", map[string]any{"status": "approved"})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *SubmissionHandlerTestSuite) TestDeleteSubmission_Success() {
	submissionID := uuid.New()

	suite.mockService.EXPECT().
		DeleteSubmission(suite.userID, submissionID).
		Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/submissions/"+submissionID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var resp map[string]bool
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.True(resp["deleted"])
}

func (suite *SubmissionHandlerTestSuite) TestDeleteSubmission_StrangerForbidden() {
	submissionID := uuid.New()

	suite.mockService.EXPECT().
		DeleteSubmission(suite.userID, submissionID).
		Return(apperrors.ErrNotSubmissionOwner)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/submissions/"+submissionID.String(), nil)

	suite.Equal(http.StatusForbidden, recorder.Code)
}

func (suite *SubmissionHandlerTestSuite) TestDeleteSubmission_InvalidID() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/submissions/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid submission ID")
}

// TestSubmissionHandlerTestSuite runs the test suite
func TestSubmissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}
