package db_models

type District struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	NameMs      string
	Description string
	ImageURL    string

	Places         []Place         `gorm:"foreignKey:DistrictID"`
	Accommodations []Accommodation `gorm:"foreignKey:DistrictID"`
}
