package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"jelajah/internal/services"
	"jelajah/pkg/utils"
)

type DistrictController struct {
	districtService services.DistrictServiceInterface
	placeService    services.PlaceServiceInterface
}

func NewDistrictController(districtService services.DistrictServiceInterface, placeService services.PlaceServiceInterface) *DistrictController {
	return &DistrictController{
		districtService: districtService,
		placeService:    placeService,
	}
}

// ListDistricts godoc
// @Summary List districts
// @Description Fetch every district of Kedah ordered by name
// @Tags District
// @Produce json
// @Success 200 {array} response_models.District
// @Router /districts [get]
func (d *DistrictController) ListDistricts(c *gin.Context) {
	districts, err := d.districtService.ListDistricts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, districts, "Districts fetched successfully")
}

func (d *DistrictController) GetDistrict(c *gin.Context) {
	districtID := c.Param("id")
	if districtID == "" {
		utils.RespondError(c, http.StatusBadRequest, "District ID is required")
		return
	}

	district, err := d.districtService.GetDistrict(c.Request.Context(), districtID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, district, "District fetched successfully")
}

// ListDistrictPlaces godoc
// @Summary List places in a district
// @Description Fetch a paginated list of active places ordered by popularity
// @Tags District
// @Produce json
// @Param id path string true "District ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.Place
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /districts/{id}/places [get]
func (d *DistrictController) ListDistrictPlaces(c *gin.Context) {
	districtID := c.Param("id")
	if districtID == "" {
		utils.RespondError(c, http.StatusBadRequest, "District ID is required")
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	places, err := d.placeService.ListPlacesByDistrict(c.Request.Context(), districtID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
