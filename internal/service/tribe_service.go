package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTribeNotFound       = errors.New("tribe not found")
	ErrTribeNameMissing    = errors.New("tribe name is required")
	ErrTribeSlugTaken      = errors.New("tribe slug is already in use")
	ErrTribeContentInvalid = errors.New("tribe content is not a valid block list")
)

// tribeContentBlock is one section of a tribe page as produced by the admin
// editor. Body carries rich HTML and is sanitized before storage.
type tribeContentBlock struct {
	Type     string `json:"type"`
	Heading  string `json:"heading,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// TribeService handles tribe profile CRUD.
type TribeService struct {
	db *gorm.DB
}

// TribeInput represents fields accepted when creating a tribe.
type TribeInput struct {
	Name      string
	Slug      string
	Summary   string
	BannerURL string
	Content   string
	SortOrder int
	Active    *bool
}

// TribePatch carries a partial update; nil fields are left untouched.
type TribePatch struct {
	Name      *string
	Slug      *string
	Summary   *string
	BannerURL *string
	Content   *string
	SortOrder *int
	Active    *bool
}

// NewTribeService creates a TribeService instance.
func NewTribeService(gdb *gorm.DB) *TribeService {
	return &TribeService{db: gdb}
}

// ListPublic returns active tribes in display order.
func (s *TribeService) ListPublic() ([]db.Tribe, error) {
	var items []db.Tribe
	if err := s.db.Where("active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every tribe, inactive included.
func (s *TribeService) ListAll() ([]db.Tribe, error) {
	var items []db.Tribe
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a tribe by id.
func (s *TribeService) Get(id uint) (*db.Tribe, error) {
	var item db.Tribe
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTribeNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetBySlug fetches a tribe by its slug.
func (s *TribeService) GetBySlug(slug string) (*db.Tribe, error) {
	var item db.Tribe
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTribeNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new tribe. A missing slug is derived from the name.
func (s *TribeService) Create(input TribeInput) (*db.Tribe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTribeNameMissing
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(name)
	}
	if taken, err := s.slugTaken(slug, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrTribeSlugTaken
	}

	content, err := sanitizeTribeContent(input.Content)
	if err != nil {
		return nil, err
	}

	item := db.Tribe{
		Name:      name,
		Slug:      slug,
		Summary:   strings.TrimSpace(input.Summary),
		BannerURL: strings.TrimSpace(input.BannerURL),
		Content:   content,
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
func (s *TribeService) Update(id uint, patch TribePatch) (*db.Tribe, error) {
	var item db.Tribe
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTribeNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Slug != nil {
		slug := slugify(*patch.Slug)
		if slug != item.Slug {
			if taken, err := s.slugTaken(slug, item.ID); err != nil {
				return nil, err
			} else if taken {
				return nil, ErrTribeSlugTaken
			}
			item.Slug = slug
		}
	}
	if patch.Summary != nil {
		item.Summary = strings.TrimSpace(*patch.Summary)
	}
	if patch.BannerURL != nil {
		item.BannerURL = strings.TrimSpace(*patch.BannerURL)
	}
	if patch.Content != nil {
		content, err := sanitizeTribeContent(*patch.Content)
		if err != nil {
			return nil, err
		}
		item.Content = content
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.Name == "" {
		return nil, ErrTribeNameMissing
	}
	if item.Slug == "" {
		item.Slug = slugify(item.Name)
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a tribe and returns the removed row.
func (s *TribeService) Delete(id uint) (*db.Tribe, error) {
	var item db.Tribe
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTribeNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *TribeService) slugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&db.Tribe{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// sanitizeTribeContent checks the block list shape and sanitizes the HTML
// body of each block. Empty content is allowed.
func sanitizeTribeContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", nil
	}

	var blocks []tribeContentBlock
	if err := json.Unmarshal([]byte(trimmed), &blocks); err != nil {
		return "", ErrTribeContentInvalid
	}

	for i := range blocks {
		blocks[i].Body = SanitizeHTML(blocks[i].Body)
	}

	encoded, err := json.Marshal(blocks)
	if err != nil {
		return "", ErrTribeContentInvalid
	}
	return string(encoded), nil
}
