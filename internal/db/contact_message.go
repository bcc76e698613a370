package db

// ContactMessage is a submission from the public contact form. Read flips to
// true once an admin opens the message; deletion is hard and permanent.
type ContactMessage struct {
	Model
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Email     string `gorm:"size:200;not null" json:"email"`
	Phone     string `gorm:"size:50" json:"phone"`
	Message   string `gorm:"type:text;not null" json:"message"`
	Read      bool   `gorm:"default:false" json:"read"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
