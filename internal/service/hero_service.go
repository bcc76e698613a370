package service

import (
	"errors"
	"strings"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrHeroSlideNotFound     = errors.New("hero slide not found")
	ErrHeroSlideImageMissing = errors.New("hero slide image is required")
)

// HeroSlideService handles hero carousel CRUD.
type HeroSlideService struct {
	db *gorm.DB
}

// HeroSlideInput represents fields accepted when creating a hero slide.
type HeroSlideInput struct {
	Title     string
	Subtitle  string
	ImageURL  string
	LinkURL   string
	SortOrder int
	Active    *bool
}

// HeroSlidePatch carries a partial update; nil fields are left untouched.
type HeroSlidePatch struct {
	Title     *string
	Subtitle  *string
	ImageURL  *string
	LinkURL   *string
	SortOrder *int
	Active    *bool
}

// NewHeroSlideService creates a HeroSlideService instance.
func NewHeroSlideService(gdb *gorm.DB) *HeroSlideService {
	return &HeroSlideService{db: gdb}
}

// ListPublic returns active slides in display order.
func (s *HeroSlideService) ListPublic() ([]db.HeroSlide, error) {
	var items []db.HeroSlide
	if err := s.db.Where("active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every slide, inactive included.
func (s *HeroSlideService) ListAll() ([]db.HeroSlide, error) {
	var items []db.HeroSlide
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a slide by id.
func (s *HeroSlideService) Get(id uint) (*db.HeroSlide, error) {
	var item db.HeroSlide
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeroSlideNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new slide. The store assigns id and timestamps.
func (s *HeroSlideService) Create(input HeroSlideInput) (*db.HeroSlide, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrHeroSlideImageMissing
	}

	item := db.HeroSlide{
		Title:     strings.TrimSpace(input.Title),
		Subtitle:  strings.TrimSpace(input.Subtitle),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		LinkURL:   strings.TrimSpace(input.LinkURL),
		SortOrder: input.SortOrder,
		Active:    true,
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the non-nil patch fields over the stored row.
func (s *HeroSlideService) Update(id uint, patch HeroSlidePatch) (*db.HeroSlide, error) {
	var item db.HeroSlide
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeroSlideNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		item.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Subtitle != nil {
		item.Subtitle = strings.TrimSpace(*patch.Subtitle)
	}
	if patch.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
	if patch.LinkURL != nil {
		item.LinkURL = strings.TrimSpace(*patch.LinkURL)
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.ImageURL == "" {
		return nil, ErrHeroSlideImageMissing
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a slide and returns the removed row.
func (s *HeroSlideService) Delete(id uint) (*db.HeroSlide, error) {
	var item db.HeroSlide
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeroSlideNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
