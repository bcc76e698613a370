package service

import (
	"errors"
	"strings"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryCategoryNotFound    = errors.New("gallery category not found")
	ErrGalleryCategoryNameMissing = errors.New("gallery category name is required")
	ErrGalleryCategorySlugTaken   = errors.New("gallery category slug is already in use")
	ErrGalleryImageNotFound       = errors.New("gallery image not found")
	ErrGalleryImageURLMissing     = errors.New("gallery image url is required")
)

// GalleryService handles gallery categories and their images.
type GalleryService struct {
	db *gorm.DB
}

// GalleryCategoryInput represents fields accepted when creating a category.
type GalleryCategoryInput struct {
	Name      string
	Slug      string
	CoverURL  string
	SortOrder int
	Active    *bool
}

// GalleryCategoryPatch carries a partial update; nil fields are untouched.
type GalleryCategoryPatch struct {
	Name      *string
	Slug      *string
	CoverURL  *string
	SortOrder *int
	Active    *bool
}

// GalleryImageInput represents fields accepted when creating an image.
type GalleryImageInput struct {
	CategoryID uint
	Title      string
	Caption    string
	ImageURL   string
	Width      int
	Height     int
	SortOrder  int
	Active     *bool
}

// GalleryImagePatch carries a partial update; nil fields are untouched.
type GalleryImagePatch struct {
	CategoryID *uint
	Title      *string
	Caption    *string
	ImageURL   *string
	Width      *int
	Height     *int
	SortOrder  *int
	Active     *bool
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ListCategoriesPublic returns active categories in display order.
func (s *GalleryService) ListCategoriesPublic() ([]db.GalleryCategory, error) {
	var items []db.GalleryCategory
	if err := s.db.Where("active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListCategoriesAll returns every category, inactive included.
func (s *GalleryService) ListCategoriesAll() ([]db.GalleryCategory, error) {
	var items []db.GalleryCategory
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetCategory fetches a category by id.
func (s *GalleryService) GetCategory(id uint) (*db.GalleryCategory, error) {
	var item db.GalleryCategory
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryCategoryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateCategory inserts a new category. A missing slug is derived from the
// name.
func (s *GalleryService) CreateCategory(input GalleryCategoryInput) (*db.GalleryCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGalleryCategoryNameMissing
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(name)
	}
	if taken, err := s.categorySlugTaken(slug, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrGalleryCategorySlugTaken
	}

	item := db.GalleryCategory{
		Name:      name,
		Slug:      slug,
		CoverURL:  strings.TrimSpace(input.CoverURL),
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

// UpdateCategory merges the non-nil patch fields over the stored row.
func (s *GalleryService) UpdateCategory(id uint, patch GalleryCategoryPatch) (*db.GalleryCategory, error) {
	var item db.GalleryCategory
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryCategoryNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Slug != nil {
		slug := slugify(*patch.Slug)
		if slug != item.Slug {
			if taken, err := s.categorySlugTaken(slug, item.ID); err != nil {
				return nil, err
			} else if taken {
				return nil, ErrGalleryCategorySlugTaken
			}
			item.Slug = slug
		}
	}
	if patch.CoverURL != nil {
		item.CoverURL = strings.TrimSpace(*patch.CoverURL)
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.Name == "" {
		return nil, ErrGalleryCategoryNameMissing
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCategory removes a category and returns the removed row. Images in
// the category are left in place; the store has no cascade rule.
func (s *GalleryService) DeleteCategory(id uint) (*db.GalleryCategory, error) {
	var item db.GalleryCategory
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryCategoryNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListImagesPublic returns active images in display order, optionally
// restricted to one category.
func (s *GalleryService) ListImagesPublic(categoryID uint) ([]db.GalleryImage, error) {
	query := s.db.Where("active = ?", true)
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []db.GalleryImage
	if err := query.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListImagesAll returns every image, inactive included.
func (s *GalleryService) ListImagesAll(categoryID uint) ([]db.GalleryImage, error) {
	query := s.db.Session(&gorm.Session{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []db.GalleryImage
	if err := query.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetImage fetches an image by id.
func (s *GalleryService) GetImage(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateImage inserts a new image. The referenced category must exist.
func (s *GalleryService) CreateImage(input GalleryImageInput) (*db.GalleryImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrGalleryImageURLMissing
	}
	if _, err := s.GetCategory(input.CategoryID); err != nil {
		return nil, err
	}

	item := db.GalleryImage{
		CategoryID: input.CategoryID,
		Title:      strings.TrimSpace(input.Title),
		Caption:    strings.TrimSpace(input.Caption),
		ImageURL:   strings.TrimSpace(input.ImageURL),
		Width:      input.Width,
		Height:     input.Height,
		SortOrder:  input.SortOrder,
		Active:     true,
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateImage merges the non-nil patch fields over the stored row.
func (s *GalleryService) UpdateImage(id uint, patch GalleryImagePatch) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}

	if patch.CategoryID != nil {
		if _, err := s.GetCategory(*patch.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *patch.CategoryID
	}
	if patch.Title != nil {
		item.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Caption != nil {
		item.Caption = strings.TrimSpace(*patch.Caption)
	}
	if patch.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
	if patch.Width != nil {
		item.Width = *patch.Width
	}
	if patch.Height != nil {
		item.Height = *patch.Height
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.ImageURL == "" {
		return nil, ErrGalleryImageURLMissing
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteImage removes an image and returns the removed row.
func (s *GalleryService) DeleteImage(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GalleryService) categorySlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&db.GalleryCategory{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
