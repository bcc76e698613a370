package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrUpdateNotFound      = errors.New("update not found")
	ErrUpdateTitleMissing  = errors.New("update title is required")
	ErrUpdateSlugTaken     = errors.New("update slug is already in use")
	ErrUpdateFormatInvalid = errors.New("update content format is invalid")
)

const (
	UpdateFormatHTML     = "html"
	UpdateFormatMarkdown = "markdown"

	updateExcerptLimit = 200
)

// UpdateService handles the news/updates feed.
type UpdateService struct {
	db *gorm.DB
}

// UpdateInput represents fields accepted when creating an update. Content is
// rich HTML by default; ContentFormat "markdown" is rendered to HTML at
// write time. Either way the stored HTML is sanitized.
type UpdateInput struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	ContentFormat string
	CoverURL      string
	PublishedAt   *time.Time
	SortOrder     int
	Active        *bool
}

// UpdatePatch carries a partial update; nil fields are left untouched.
type UpdatePatch struct {
	Title         *string
	Slug          *string
	Excerpt       *string
	Content       *string
	ContentFormat *string
	CoverURL      *string
	PublishedAt   *time.Time
	SortOrder     *int
	Active        *bool
}

// NewUpdateService creates an UpdateService instance.
func NewUpdateService(gdb *gorm.DB) *UpdateService {
	return &UpdateService{db: gdb}
}

// ListPublic returns active updates, newest publication first. limit <= 0
// means no limit.
func (s *UpdateService) ListPublic(limit int) ([]db.Update, error) {
	query := s.db.Where("active = ?", true).
		Order("published_at desc").Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []db.Update
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every update, inactive included, newest first.
func (s *UpdateService) ListAll() ([]db.Update, error) {
	var items []db.Update
	if err := s.db.Order("published_at desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches an update by id.
func (s *UpdateService) Get(id uint) (*db.Update, error) {
	var item db.Update
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetBySlug fetches an update by its slug.
func (s *UpdateService) GetBySlug(slug string) (*db.Update, error) {
	var item db.Update
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new update. Slug falls back to the title, the excerpt to
// the opening of the content, and PublishedAt to now.
func (s *UpdateService) Create(input UpdateInput) (*db.Update, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrUpdateTitleMissing
	}

	content, err := renderUpdateContent(input.Content, input.ContentFormat)
	if err != nil {
		return nil, err
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}
	if taken, err := s.slugTaken(slug, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUpdateSlugTaken
	}

	excerpt := strings.TrimSpace(input.Excerpt)
	if excerpt == "" {
		excerpt = ExcerptFromHTML(content, updateExcerptLimit)
	}

	publishedAt := time.Now()
	if input.PublishedAt != nil {
		publishedAt = *input.PublishedAt
	}

	item := db.Update{
		Title:       title,
		Slug:        slug,
		Excerpt:     excerpt,
		Content:     content,
		CoverURL:    strings.TrimSpace(input.CoverURL),
		PublishedAt: publishedAt,
		SortOrder:   input.SortOrder,
		Active:      true,
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
func (s *UpdateService) Update(id uint, patch UpdatePatch) (*db.Update, error) {
	var item db.Update
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		item.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil {
		slug := slugify(*patch.Slug)
		if slug != item.Slug {
			if taken, err := s.slugTaken(slug, item.ID); err != nil {
				return nil, err
			} else if taken {
				return nil, ErrUpdateSlugTaken
			}
			item.Slug = slug
		}
	}
	if patch.Content != nil {
		format := ""
		if patch.ContentFormat != nil {
			format = *patch.ContentFormat
		}
		content, err := renderUpdateContent(*patch.Content, format)
		if err != nil {
			return nil, err
		}
		item.Content = content
	}
	if patch.Excerpt != nil {
		item.Excerpt = strings.TrimSpace(*patch.Excerpt)
	}
	if item.Excerpt == "" {
		item.Excerpt = ExcerptFromHTML(item.Content, updateExcerptLimit)
	}
	if patch.CoverURL != nil {
		item.CoverURL = strings.TrimSpace(*patch.CoverURL)
	}
	if patch.PublishedAt != nil {
		item.PublishedAt = *patch.PublishedAt
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.Title == "" {
		return nil, ErrUpdateTitleMissing
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an update and returns the removed row.
func (s *UpdateService) Delete(id uint) (*db.Update, error) {
	var item db.Update
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *UpdateService) slugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&db.Update{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func renderUpdateContent(content, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", UpdateFormatHTML:
		return SanitizeHTML(content), nil
	case UpdateFormatMarkdown:
		return RenderMarkdown(content)
	default:
		return "", ErrUpdateFormatInvalid
	}
}
