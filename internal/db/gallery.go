package db

// GalleryCategory groups gallery images into albums.
type GalleryCategory struct {
	Model
	Name      string `gorm:"size:150;not null" json:"name"`
	Slug      string `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	CoverURL  string `gorm:"size:500" json:"cover"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	Active    bool   `json:"active"`
}

func (GalleryCategory) TableName() string {
	return "gallery_categories"
}

// GalleryImage is a single photo belonging to a category.
type GalleryImage struct {
	Model
	CategoryID uint   `gorm:"index;not null" json:"categoryId"`
	Title      string `gorm:"size:200" json:"title"`
	Caption    string `gorm:"size:500" json:"caption"`
	ImageURL   string `gorm:"size:500;not null" json:"image"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SortOrder  int    `gorm:"default:0" json:"sortOrder"`
	Active     bool   `json:"active"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
