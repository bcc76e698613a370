package db

// HeroSlide is one slide of the home page hero carousel.
type HeroSlide struct {
	Model
	Title     string `gorm:"size:200" json:"title"`
	Subtitle  string `gorm:"size:300" json:"subtitle"`
	ImageURL  string `gorm:"size:500;not null" json:"image"`
	LinkURL   string `gorm:"size:500" json:"link"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	Active    bool   `json:"active"`
}

// TableName keeps the table name stable across gorm naming changes.
func (HeroSlide) TableName() string {
	return "hero_slides"
}
