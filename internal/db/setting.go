package db

// Setting stores one site-wide key/value pair. Values are plain strings;
// each named key documents what its consumer expects to decode.
type Setting struct {
	Model
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	// SettingKeySiteName is the institute name shown in the header.
	SettingKeySiteName = "site_name"
	// SettingKeySiteTagline is the subtitle shown under the site name.
	SettingKeySiteTagline = "site_tagline"
	// SettingKeyContactEmail is the public contact email address.
	SettingKeyContactEmail = "contact_email"
	// SettingKeyContactPhone is the public contact phone number.
	SettingKeyContactPhone = "contact_phone"
	// SettingKeyContactAddress is the postal address shown in the footer.
	SettingKeyContactAddress = "contact_address"
	// SettingKeyFooterText is the footer copyright line.
	SettingKeyFooterText = "footer_text"
	// SettingKeyMarqueeItems holds a JSON-encoded string array of ticker
	// announcements.
	SettingKeyMarqueeItems = "marquee_items"
	// SettingKeyVisitorCount holds the vanity visitor counter as a decimal
	// string.
	SettingKeyVisitorCount = "visitor_count"
)
