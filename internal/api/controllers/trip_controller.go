package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"jelajah/internal/models/request_models"
	"jelajah/internal/services"
	"jelajah/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GenerateTrip godoc
// @Summary Generate a trip
// @Description Build a day-by-day itinerary for a district and keep it as a draft
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip preferences"
// @Success 201 {object} response_models.TripDraft
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/generate [post]
func (t *TripController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	draft, err := t.tripService.GenerateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, draft, "Trip generated successfully")
}

func (t *TripController) GetDraft(c *gin.Context) {
	draft, err := t.tripService.GetDraft(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Trip draft fetched successfully")
}

func (t *TripController) RemoveStop(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	draft, err := t.tripService.RemoveStop(c.Request.Context(), c.Param("draftId"), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Place removed from trip")
}

// RegenerateTrip godoc
// @Summary Regenerate a trip
// @Description Rebuild a draft with its original preferences, avoiding removed places
// @Tags Trip
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.TripDraft
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /trips/drafts/{draftId}/regenerate [post]
func (t *TripController) RegenerateTrip(c *gin.Context) {
	draft, err := t.tripService.RegenerateTrip(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Trip regenerated successfully")
}
