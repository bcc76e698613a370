package db

// Tribe is a community profile page. Content holds the JSON-encoded content
// blocks produced by the admin editor; the server stores them opaquely apart
// from sanitizing embedded HTML.
type Tribe struct {
	Model
	Name      string `gorm:"size:150;not null" json:"name"`
	Slug      string `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Summary   string `gorm:"size:500" json:"summary"`
	BannerURL string `gorm:"size:500" json:"banner"`
	Content   string `gorm:"type:text" json:"content"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	Active    bool   `json:"active"`
}

func (Tribe) TableName() string {
	return "tribes"
}
