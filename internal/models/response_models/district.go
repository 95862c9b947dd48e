package response_models

type District struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameMs      string `json:"name_ms"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
