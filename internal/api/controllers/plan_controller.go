package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"jelajah/internal/models/request_models"
	"jelajah/internal/services"
	"jelajah/pkg/middleware"
	"jelajah/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// SavePlan godoc
// @Summary Save a trip draft
// @Description Persist a generated draft as a travel plan owned by the caller
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.SavePlanRequest true "Draft to save"
// @Success 201 {object} response_models.PlanDetail
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [post]
func (p *PlanController) SavePlan(c *gin.Context) {
	var req request_models.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	plan, err := p.planService.SavePlan(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Travel plan saved successfully")
}

func (p *PlanController) ListPlans(c *gin.Context) {
	plans, err := p.planService.ListPlans(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Travel plans fetched successfully")
}

func (p *PlanController) GetPlan(c *gin.Context) {
	plan, err := p.planService.GetPlan(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan fetched successfully")
}

func (p *PlanController) UpdatePlanStatus(c *gin.Context) {
	var req request_models.UpdatePlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	err := p.planService.UpdatePlanStatus(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"status": req.Status}, "Travel plan status updated")
}

func (p *PlanController) DeletePlan(c *gin.Context) {
	if err := p.planService.DeletePlan(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel plan deleted")
}

// RemovePlanStop godoc
// @Summary Remove a place from a saved plan
// @Tags Plan
// @Produce json
// @Param id path string true "Plan ID"
// @Param placeId path string true "Place ID"
// @Success 200 {object} response_models.PlanDetail
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{id}/places/{placeId} [delete]
func (p *PlanController) RemovePlanStop(c *gin.Context) {
	plan, err := p.planService.RemovePlanStop(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.Param("id"), c.Param("placeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Place removed from travel plan")
}
