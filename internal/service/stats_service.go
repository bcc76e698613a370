package service

import (
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

// DashboardStats carries one row count per content table for the admin
// dashboard, recomputed on every call.
type DashboardStats struct {
	HeroSlides        int64 `json:"heroSlides"`
	Dignitaries       int64 `json:"dignitaries"`
	Tribes            int64 `json:"tribes"`
	StaffMembers      int64 `json:"staffMembers"`
	GalleryCategories int64 `json:"galleryCategories"`
	GalleryImages     int64 `json:"galleryImages"`
	Updates           int64 `json:"updates"`
	Pages             int64 `json:"pages"`
	Messages          int64 `json:"messages"`
	UnreadMessages    int64 `json:"unreadMessages"`
}

// StatsService computes the dashboard aggregate.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a StatsService instance.
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// Collect counts every entity table plus unread contact messages.
func (s *StatsService) Collect() (DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		model any
		dest  *int64
	}{
		{&db.HeroSlide{}, &stats.HeroSlides},
		{&db.Dignitary{}, &stats.Dignitaries},
		{&db.Tribe{}, &stats.Tribes},
		{&db.StaffMember{}, &stats.StaffMembers},
		{&db.GalleryCategory{}, &stats.GalleryCategories},
		{&db.GalleryImage{}, &stats.GalleryImages},
		{&db.Update{}, &stats.Updates},
		{&db.Page{}, &stats.Pages},
		{&db.ContactMessage{}, &stats.Messages},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return stats, err
		}
	}

	if err := s.db.Model(&db.ContactMessage{}).
		Where("read = ?", false).
		Count(&stats.UnreadMessages).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
