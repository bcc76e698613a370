package db

// StaffMember is one entry of the staff directory.
type StaffMember struct {
	Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Designation string `gorm:"size:200" json:"designation"`
	Department  string `gorm:"size:150" json:"department"`
	PhotoURL    string `gorm:"size:500" json:"photo"`
	Email       string `gorm:"size:200" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
	Active      bool   `json:"active"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}
