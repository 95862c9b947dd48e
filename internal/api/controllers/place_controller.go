package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"jelajah/internal/services"
	"jelajah/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{
		placeService: placeService,
	}
}

func (p *PlaceController) GetPlaceByID(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.placeService.GetPlaceByID(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// Discover godoc
// @Summary Discover page
// @Description Trendy attractions, hidden gems and the best stay of every district
// @Tags Place
// @Produce json
// @Success 200 {object} response_models.DiscoverPage
// @Router /places/discover [get]
func (p *PlaceController) Discover(c *gin.Context) {
	page, err := p.placeService.Discover(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Discover page fetched successfully")
}
