package service

import (
	"errors"
	"fmt"
	"time"

	"league-portal-backend/internal/database/models"
	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReconciliationService is the match result reconciliation engine. Two teams
// independently submit a claimed score for a shared match; the engine decides
// agreement or conflict and promotes the match to a finalized state either
// automatically or via manager adjudication.
type ReconciliationService struct {
	txm              repository.TxManagerInterface
	matchRepo        repository.MatchRepositoryInterface
	submissionRepo   repository.MatchResultSubmissionRepositoryInterface
	teamRepo         repository.TeamRepositoryInterface
	leagueMemberRepo repository.LeagueMemberRepositoryInterface
	eligibility      EligibilityResolverInterface
	notifier         NotificationServiceInterface
	validator        *validator.Validate
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	txm repository.TxManagerInterface,
	matchRepo repository.MatchRepositoryInterface,
	submissionRepo repository.MatchResultSubmissionRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	leagueMemberRepo repository.LeagueMemberRepositoryInterface,
	eligibility EligibilityResolverInterface,
	notifier NotificationServiceInterface,
	validator *validator.Validate,
) *ReconciliationService {
	return &ReconciliationService{
		txm:              txm,
		matchRepo:        matchRepo,
		submissionRepo:   submissionRepo,
		teamRepo:         teamRepo,
		leagueMemberRepo: leagueMemberRepo,
		eligibility:      eligibility,
		notifier:         notifier,
		validator:        validator,
	}
}

// SubmitResultRequest represents one team's claimed outcome for a match
type SubmitResultRequest struct {
	MatchID   uuid.UUID `json:"match_id" validate:"required"`
	HomeScore int       `json:"home_team_score" validate:"min=0"`
	AwayScore int       `json:"away_team_score" validate:"min=0"`
	Notes     string    `json:"notes" validate:"max=500"`
}

// SubmitResultResponse represents the outcome of a submission attempt
type SubmitResultResponse struct {
	Submission   *SubmissionResponse `json:"submission,omitempty"`
	MatchUpdated bool                `json:"match_updated"`
	Message      string              `json:"message"`
	Conflict     *ConflictPayload    `json:"conflict,omitempty"`
}

// ConflictSide is one team's claimed score inside a conflict payload
type ConflictSide struct {
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

// ConflictPayload describes two disagreeing submissions for manager adjudication
type ConflictPayload struct {
	MatchID        uuid.UUID    `json:"match_id"`
	HomeSubmission ConflictSide `json:"home_submission"`
	AwaySubmission ConflictSide `json:"away_submission"`
}

// UpdateSubmissionStatusRequest represents a manager's adjudication decision
type UpdateSubmissionStatusRequest struct {
	Status models.SubmissionStatus `json:"status" validate:"required,oneof=approved rejected"`
	Notes  string                  `json:"notes" validate:"max=500"`
}

// SubmissionResponse represents a submission in API responses
type SubmissionResponse struct {
	ID               uuid.UUID               `json:"id"`
	MatchID          uuid.UUID               `json:"match_id"`
	TeamID           uuid.UUID               `json:"team_id"`
	SubmittingUserID uuid.UUID               `json:"submitting_user_id"`
	HomeScore        int                     `json:"home_score"`
	AwayScore        int                     `json:"away_score"`
	Notes            string                  `json:"notes,omitempty"`
	Status           models.SubmissionStatus `json:"status"`
	CreatedAt        string                  `json:"created_at"`
}

// reconcileOutcome carries the decision taken inside the submission transaction
type reconcileOutcome struct {
	finalized   bool
	submissions []models.MatchResultSubmission
}

// SubmitResult records a team's claimed score for a match and runs the
// agreement/conflict algorithm once both sides have submitted. A league
// manager who is on neither roster bypasses the ledger and finalizes the
// match directly.
func (s *ReconciliationService) SubmitResult(userID uuid.UUID, req *SubmitResultRequest) (*SubmitResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := s.matchRepo.GetByID(req.MatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if match.Status == models.MatchStatusCompleted {
		return nil, apperrors.ErrMatchAlreadyCompleted
	}
	if match.Status == models.MatchStatusCancelled {
		return nil, apperrors.ErrMatchCancelled
	}

	role, err := s.eligibility.Resolve(userID, match)
	if err != nil {
		return nil, err
	}

	switch role {
	case RoleLeagueManager:
		return s.managerFinalize(match, req)
	case RoleNone:
		return nil, apperrors.ErrNotMatchParticipant
	}

	teamID := match.HomeTeamID
	if role == RoleAwayTeamMember {
		teamID = match.AwayTeamID
	}

	submission := &models.MatchResultSubmission{
		MatchID:          match.ID,
		TeamID:           teamID,
		SubmittingUserID: userID,
		HomeScore:        req.HomeScore,
		AwayScore:        req.AwayScore,
		Notes:            req.Notes,
		Status:           models.SubmissionStatusPending,
	}

	var outcome reconcileOutcome
	err = s.txm.Do(func(tx *gorm.DB) error {
		subRepo := s.submissionRepo.WithTx(tx)

		// The unique index over (match_id, team_id) makes check-then-insert
		// atomic: a racing duplicate fails here instead of double-inserting.
		if err := subRepo.Create(submission); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateSubmission
			}
			return fmt.Errorf("failed to create submission: %w", err)
		}

		// Read back inside the same transaction so the insert above is
		// visible: whichever submission commits second observes both rows.
		subs, err := subRepo.GetByMatchID(match.ID)
		if err != nil {
			return fmt.Errorf("failed to load submissions: %w", err)
		}
		outcome.submissions = subs

		if len(subs) < 2 {
			return nil
		}

		cmp := CompareScorePairs(scorePairOf(&subs[0]), scorePairOf(&subs[1]))
		if !cmp.Agreed {
			// Leave the match and both submissions untouched; escalation
			// happens after commit.
			return nil
		}

		finalized, err := s.matchRepo.WithTx(tx).FinalizeMatch(match.ID, cmp.Scores.HomeScore, cmp.Scores.AwayScore)
		if err != nil {
			return fmt.Errorf("failed to finalize match: %w", err)
		}
		if !finalized {
			// A concurrent finalization won the race.
			return apperrors.ErrMatchAlreadyCompleted
		}
		for i := range subs {
			if err := subRepo.UpdateStatus(subs[i].ID, models.SubmissionStatusApproved, ""); err != nil {
				return fmt.Errorf("failed to approve submission: %w", err)
			}
		}
		outcome.finalized = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &SubmitResultResponse{Submission: toSubmissionResponse(submission)}

	if len(outcome.submissions) < 2 {
		resp.Message = "result recorded, waiting for opponent submission"
		return resp, nil
	}

	if outcome.finalized {
		resp.MatchUpdated = true
		resp.Message = "both submissions agree, match finalized"
		s.notifyFinalized(match, outcome.submissions)
		return resp, nil
	}

	conflict, err := s.buildConflictPayload(match, outcome.submissions)
	if err != nil {
		return nil, err
	}
	resp.Conflict = conflict
	resp.Message = "submissions disagree, league managers have been notified"
	s.escalateConflict(match, conflict)
	return resp, nil
}

// managerFinalize is the privileged path: the manager's scores go directly
// onto the match record with no ledger entry and no reconciliation.
func (s *ReconciliationService) managerFinalize(match *models.Match, req *SubmitResultRequest) (*SubmitResultResponse, error) {
	finalized, err := s.matchRepo.FinalizeMatch(match.ID, req.HomeScore, req.AwayScore)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize match: %w", err)
	}
	if !finalized {
		return nil, apperrors.ErrMatchAlreadyCompleted
	}
	return &SubmitResultResponse{
		MatchUpdated: true,
		Message:      "match finalized by league manager",
	}, nil
}

// UpdateSubmissionStatus applies a manager's adjudication decision. Approving
// a submission while the match is still open finalizes the match from that
// submission's scores. The sibling submission is deliberately left alone;
// reconciling it is a manual manager follow-up.
func (s *ReconciliationService) UpdateSubmissionStatus(callerID, submissionID uuid.UUID, req *UpdateSubmissionStatusRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	submission, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	match, err := s.matchRepo.GetByID(submission.MatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	isManager, err := s.leagueMemberRepo.IsManager(callerID, match.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to check league manager role: %w", err)
	}
	if !isManager {
		return nil, apperrors.ErrNotLeagueManager
	}

	if req.Status == models.SubmissionStatusApproved && !match.IsFinal() {
		if _, err := s.matchRepo.FinalizeMatch(match.ID, submission.HomeScore, submission.AwayScore); err != nil {
			return nil, fmt.Errorf("failed to finalize match: %w", err)
		}
	}

	if err := s.submissionRepo.UpdateStatus(submissionID, req.Status, req.Notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	submission.Status = req.Status
	if req.Notes != "" {
		submission.Notes = req.Notes
	}
	return toSubmissionResponse(submission), nil
}

// DeleteSubmission removes a ledger entry. Permitted for the original
// submitter and for managers of the match's league; has no effect on the
// match record.
func (s *ReconciliationService) DeleteSubmission(callerID, submissionID uuid.UUID) error {
	submission, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to get submission: %w", err)
	}

	if callerID != submission.SubmittingUserID {
		match, err := s.matchRepo.GetByID(submission.MatchID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMatchNotFound
			}
			return fmt.Errorf("failed to get match: %w", err)
		}
		isManager, err := s.leagueMemberRepo.IsManager(callerID, match.LeagueID)
		if err != nil {
			return fmt.Errorf("failed to check league manager role: %w", err)
		}
		if !isManager {
			return apperrors.ErrNotSubmissionOwner
		}
	}

	if err := s.submissionRepo.Delete(submissionID); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}

// buildConflictPayload resolves team names for the two disagreeing submissions
func (s *ReconciliationService) buildConflictPayload(match *models.Match, subs []models.MatchResultSubmission) (*ConflictPayload, error) {
	payload := &ConflictPayload{MatchID: match.ID}
	for i := range subs {
		team, err := s.teamRepo.GetByID(subs[i].TeamID)
		if err != nil {
			return nil, fmt.Errorf("failed to get team for conflict payload: %w", err)
		}
		side := ConflictSide{
			TeamID:    subs[i].TeamID,
			TeamName:  team.Name,
			HomeScore: subs[i].HomeScore,
			AwayScore: subs[i].AwayScore,
		}
		if subs[i].TeamID == match.HomeTeamID {
			payload.HomeSubmission = side
		} else {
			payload.AwaySubmission = side
		}
	}
	return payload, nil
}

// escalateConflict notifies every league manager once. Delivery is
// fire-and-forget: a failed notification is logged and does not fail the
// submission.
func (s *ReconciliationService) escalateConflict(match *models.Match, payload *ConflictPayload) {
	managers, err := s.leagueMemberRepo.GetManagers(match.LeagueID)
	if err != nil {
		logrus.WithError(err).WithField("match_id", match.ID).Warn("failed to load league managers for conflict escalation")
		return
	}
	for i := range managers {
		if err := s.notifier.NotifyConflict(managers[i].UserID, match.ID, payload); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"match_id": match.ID,
				"user_id":  managers[i].UserID,
			}).Warn("failed to deliver conflict notification")
		}
	}
}

// notifyFinalized tells both submitters their agreed result is now official
func (s *ReconciliationService) notifyFinalized(match *models.Match, subs []models.MatchResultSubmission) {
	cmp := CompareScorePairs(scorePairOf(&subs[0]), scorePairOf(&subs[1]))
	for i := range subs {
		if err := s.notifier.NotifyMatchFinalized(subs[i].SubmittingUserID, match.ID, cmp.Scores.HomeScore, cmp.Scores.AwayScore); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"match_id": match.ID,
				"user_id":  subs[i].SubmittingUserID,
			}).Warn("failed to deliver finalization notification")
		}
	}
}

func toSubmissionResponse(submission *models.MatchResultSubmission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:               submission.ID,
		MatchID:          submission.MatchID,
		TeamID:           submission.TeamID,
		SubmittingUserID: submission.SubmittingUserID,
		HomeScore:        submission.HomeScore,
		AwayScore:        submission.AwayScore,
		Notes:            submission.Notes,
		Status:           submission.Status,
		CreatedAt:        submission.CreatedAt.Format(time.RFC3339),
	}
}
