package handlers

import (
	"errors"
	"net/http"

	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeagueHandler handles HTTP requests for leagues and league memberships
type LeagueHandler struct {
	leagueService service.LeagueServiceInterface
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(leagueService service.LeagueServiceInterface) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
	}
}

// CreateLeague handles POST /leagues
// @Summary Create a new league
// @Description Create a league for a given season
// @Tags leagues
// @Accept json
// @Produce json
// @Param league body service.CreateLeagueRequest true "League data"
// @Success 201 {object} service.LeagueResponse "Successfully created league"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "League already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues [post]
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req service.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	league, err := h.leagueService.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, league)
}

// GetLeague handles GET /leagues/:id
// @Summary Get league by ID
// @Description Get a specific league by its UUID
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 200 {object} service.LeagueResponse "Successfully retrieved league"
// @Failure 400 {object} ErrorResponse "Invalid league ID"
// @Failure 404 {object} ErrorResponse "League not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id} [get]
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	league, err := h.leagueService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, league)
}

// GetLeagues handles GET /leagues
// @Summary List leagues
// @Description Get all leagues with pagination
// @Tags leagues
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeagueListResponse "Successfully retrieved leagues"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues [get]
func (h *LeagueHandler) GetLeagues(c *gin.Context) {
	page, pageSize := pagination(c)

	leagues, err := h.leagueService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leagues)
}

// UpdateLeague handles PUT /leagues/:id
// @Summary Update a league
// @Description Update a league's description or status
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param league body service.UpdateLeagueRequest true "League data"
// @Success 200 {object} service.LeagueResponse "Successfully updated league"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "League not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id} [put]
func (h *LeagueHandler) UpdateLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	var req service.UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	league, err := h.leagueService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeagueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, league)
}

// DeleteLeague handles DELETE /leagues/:id
// @Summary Delete a league
// @Description Delete a league by its UUID
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid league ID"
// @Failure 404 {object} ErrorResponse "League not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id} [delete]
func (h *LeagueHandler) DeleteLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	if err := h.leagueService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddLeagueMember handles POST /leagues/:id/members
// @Summary Add a league member
// @Description Add a user to a league as a manager or player
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param member body service.AddLeagueMemberRequest true "Membership data"
// @Success 201 {object} service.LeagueMemberResponse "Successfully added member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "League or user not found"
// @Failure 409 {object} ErrorResponse "User is already a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id}/members [post]
func (h *LeagueHandler) AddLeagueMember(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	var req service.AddLeagueMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.leagueService.AddMember(leagueID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetLeagueMembers handles GET /leagues/:id/members
// @Summary List league members
// @Description Get all memberships of a league
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 200 {array} service.LeagueMemberResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid league ID"
// @Failure 404 {object} ErrorResponse "League not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id}/members [get]
func (h *LeagueHandler) GetLeagueMembers(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}

	members, err := h.leagueService.GetMembers(leagueID)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// RemoveLeagueMember handles DELETE /leagues/:id/members/:memberId
// @Summary Remove a league member
// @Description Remove a membership from a league
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 200 {object} map[string]bool "Removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "League not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id}/members/{memberId} [delete]
func (h *LeagueHandler) RemoveLeagueMember(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid league ID"})
		return
	}
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.leagueService.RemoveMember(leagueID, memberID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true})
}
