package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"planventure/internal/models/request_models"
	"planventure/internal/services"
	"planventure/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GetTrips godoc
// @Summary List trips
// @Description Fetch a paginated list of the authenticated user's trips
// @Tags Trips
// @Produce json
// @Param status query string false "Filter by status (planned|active|completed|cancelled)"
// @Param destination query string false "Filter by destination substring"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) GetTrips(c *gin.Context) {
	var query request_models.ListTripsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a new trip for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title, destination, start_date, and end_date are required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// GetTrip godoc
// @Summary Get trip by ID
// @Description Fetch one of the authenticated user's trips
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Partially update one of the authenticated user's trips
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete one of the authenticated user's trips
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {

	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// GetTripStats godoc
// @Summary Get trip statistics
// @Description Per-status counts, total budget and the next upcoming trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/stats [get]
func (t *TripController) GetTripStats(c *gin.Context) {

	stats, err := t.tripService.GetStats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Trip statistics fetched successfully")
}

// GenerateItinerary godoc
// @Summary Generate a default itinerary
// @Description Generate and store a day-by-day itinerary for a trip. If the trip already has one, send {"overwrite": true} to replace it.
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.GenerateItineraryRequest false "Generation options"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/generate-itinerary [post]
func (t *TripController) GenerateItinerary(c *gin.Context) {
	// Body is optional; a missing body means overwrite=false.
	var req request_models.GenerateItineraryRequest
	_ = c.ShouldBindJSON(&req)

	result, err := t.tripService.GenerateItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req.Overwrite)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !result.Applied {
		utils.RespondSuccess(c, result, "Trip already has an itinerary, send {\"overwrite\": true} to replace it")
		return
	}

	utils.RespondSuccess(c, result, "Default itinerary generated successfully")
}

// PreviewItinerary godoc
// @Summary Preview an itinerary
// @Description Generate an itinerary from trip details without saving anything
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.PreviewItineraryRequest true "Preview payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/generate-itinerary-preview [post]
func (t *TripController) PreviewItinerary(c *gin.Context) {
	var req request_models.PreviewItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, start_date and end_date are required")
		return
	}

	preview, err := t.tripService.PreviewItinerary(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, preview, "Itinerary preview generated")
}
