package db

// Dignitary holds a leadership profile shown on the home and about pages.
type Dignitary struct {
	Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Designation string `gorm:"size:200" json:"designation"`
	PhotoURL    string `gorm:"size:500" json:"photo"`
	Message     string `gorm:"type:text" json:"message"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
	Active      bool   `json:"active"`
}

func (Dignitary) TableName() string {
	return "dignitaries"
}
