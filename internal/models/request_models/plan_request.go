package request_models

type SavePlanRequest struct {
	DraftID string `json:"draft_id" binding:"required,uuid"`
	Title   string `json:"title" binding:"omitempty,max=120"`
}

type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active saved completed"`
}
