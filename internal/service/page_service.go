package service

import (
	"errors"
	"strings"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrPageSlugMissing = errors.New("page slug is required")
)

// PageService stores free-form content blobs keyed by slug.
type PageService struct {
	db *gorm.DB
}

// PageInput represents the writable fields of a page.
type PageInput struct {
	Title   string
	Content string
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// List returns every stored page.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("slug asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Upsert creates the page when the slug is absent and updates it in place
// otherwise. The second return reports whether a new row was inserted. The
// page id never changes on update.
func (s *PageService) Upsert(slug string, input PageInput) (*db.Page, bool, error) {
	key := slugify(slug)
	if key == "" {
		return nil, false, ErrPageSlugMissing
	}

	title := strings.TrimSpace(input.Title)
	content := SanitizeHTML(input.Content)

	var page db.Page
	err := s.db.Where("slug = ?", key).First(&page).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		page = db.Page{Slug: key, Title: title, Content: content}
		if err := s.db.Create(&page).Error; err != nil {
			return nil, false, err
		}
		return &page, true, nil
	}

	page.Title = title
	page.Content = content
	if err := s.db.Save(&page).Error; err != nil {
		return nil, false, err
	}
	return &page, false, nil
}

// Delete removes a page by slug and returns the removed row.
func (s *PageService) Delete(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}
