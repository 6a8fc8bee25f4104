package handlers

import (
	"net/http"

	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmissionHandler handles HTTP requests for match result submissions
type SubmissionHandler struct {
	reconciliationService service.ReconciliationServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(reconciliationService service.ReconciliationServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{
		reconciliationService: reconciliationService,
	}
}

// currentUserID extracts the authenticated caller's user ID from the gin context
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// SubmitResult handles POST /matches/:id/results
// @Summary Submit a match result
// @Description Submit one team's claimed score for a match. When both teams have submitted and the scores agree the match is finalized; a disagreement escalates to the league managers. A league manager who is on neither roster finalizes the match directly.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param result body service.SubmitResultRequest true "Claimed score"
// @Success 201 {object} service.SubmitResultResponse "Submission recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not eligible to submit"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Team has already submitted a result"
// @Failure 422 {object} ErrorResponse "Match is already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /matches/{id}/results [post]
func (h *SubmissionHandler) SubmitResult(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUserIDMissing.Error()})
		return
	}

	var req service.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.MatchID = matchID

	result, err := h.reconciliationService.SubmitResult(userID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsInvalidState(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateSubmissionStatus handles PATCH /submissions/:id/status
// @Summary Adjudicate a submission
// @Description Approve or reject a pending submission. Approving while the match is still open finalizes the match with that submission's scores. Manager-only.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Param decision body service.UpdateSubmissionStatusRequest true "Adjudication decision"
// @Success 200 {object} service.SubmissionResponse "Updated submission"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a manager of the match's league"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /submissions/{id}/status [patch]
func (h *SubmissionHandler) UpdateSubmissionStatus(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUserIDMissing.Error()})
		return
	}

	var req service.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.reconciliationService.UpdateSubmissionStatus(userID, submissionID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsInvalidState(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, submission)
}

// DeleteSubmission handles DELETE /submissions/:id
// @Summary Delete a submission
// @Description Remove a submission from the ledger. Permitted for the original submitter and managers of the match's league.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid submission ID"
// @Failure 403 {object} ErrorResponse "Caller may not delete this submission"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUserIDMissing.Error()})
		return
	}

	if err := h.reconciliationService.DeleteSubmission(userID, submissionID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
