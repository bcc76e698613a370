package db

import "time"

// Update is a news post shown on the updates feed. Content is rich HTML,
// sanitized before storage.
type Update struct {
	Model
	Title       string    `gorm:"size:300;not null" json:"title"`
	Slug        string    `gorm:"size:300;uniqueIndex;not null" json:"slug"`
	Excerpt     string    `gorm:"size:500" json:"excerpt"`
	Content     string    `gorm:"type:text" json:"content"`
	CoverURL    string    `gorm:"size:500" json:"cover"`
	PublishedAt time.Time `json:"publishedAt"`
	SortOrder   int       `gorm:"default:0" json:"sortOrder"`
	Active      bool      `json:"active"`
}

func (Update) TableName() string {
	return "updates"
}
