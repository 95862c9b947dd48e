package request_models

type GenerateTripRequest struct {
	DistrictID    string   `json:"district_id" binding:"required,uuid"`
	TravelerCount int      `json:"traveler_count" binding:"required,min=1,max=50"`
	TravelerType  string   `json:"traveler_type" binding:"required,oneof=Solo Couple Family Friends"`
	StartDate     string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate       string   `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Budget        float64  `json:"budget" binding:"required,gt=0"`
	Interests     []string `json:"interests" binding:"required,min=1,dive,required"`
}
