package db

// Page stores free-form rich content keyed by a unique slug, e.g. "about"
// or "accessibility". Writes are upserts by slug.
type Page struct {
	Model
	Slug    string `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Title   string `gorm:"size:300" json:"title"`
	Content string `gorm:"type:text" json:"content"`
}

func (Page) TableName() string {
	return "pages"
}
