package handlers

import (
	"errors"
	"net/http"

	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocationHandler handles HTTP requests for match venues
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// CreateLocation handles POST /locations
// @Summary Create a new location
// @Description Register a venue where matches can be scheduled
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Successfully created location"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// GetLocation handles GET /locations/:id
// @Summary Get location by ID
// @Description Get a specific location by its UUID
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} service.LocationResponse "Successfully retrieved location"
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}

	location, err := h.locationService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location)
}

// GetLocations handles GET /locations
// @Summary List locations
// @Description Get all locations with pagination
// @Tags locations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LocationListResponse "Successfully retrieved locations"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations [get]
func (h *LocationHandler) GetLocations(c *gin.Context) {
	page, pageSize := pagination(c)

	locations, err := h.locationService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// UpdateLocation handles PUT /locations/:id
// @Summary Update a location
// @Description Update a location's details
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Param location body service.UpdateLocationRequest true "Location data"
// @Success 200 {object} service.LocationResponse "Successfully updated location"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}

	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/:id
// @Summary Delete a location
// @Description Delete a location by its UUID
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}

	if err := h.locationService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
