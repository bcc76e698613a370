package service

import (
	"errors"
	"strings"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrDignitaryNotFound    = errors.New("dignitary not found")
	ErrDignitaryNameMissing = errors.New("dignitary name is required")
)

// DignitaryService handles leadership profile CRUD.
type DignitaryService struct {
	db *gorm.DB
}

// DignitaryInput represents fields accepted when creating a dignitary.
type DignitaryInput struct {
	Name        string
	Designation string
	PhotoURL    string
	Message     string
	SortOrder   int
	Active      *bool
}

// DignitaryPatch carries a partial update; nil fields are left untouched.
type DignitaryPatch struct {
	Name        *string
	Designation *string
	PhotoURL    *string
	Message     *string
	SortOrder   *int
	Active      *bool
}

// NewDignitaryService creates a DignitaryService instance.
func NewDignitaryService(gdb *gorm.DB) *DignitaryService {
	return &DignitaryService{db: gdb}
}

// ListPublic returns active dignitaries in display order.
func (s *DignitaryService) ListPublic() ([]db.Dignitary, error) {
	var items []db.Dignitary
	if err := s.db.Where("active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every dignitary, inactive included.
func (s *DignitaryService) ListAll() ([]db.Dignitary, error) {
	var items []db.Dignitary
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a dignitary by id.
func (s *DignitaryService) Get(id uint) (*db.Dignitary, error) {
	var item db.Dignitary
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDignitaryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new dignitary.
func (s *DignitaryService) Create(input DignitaryInput) (*db.Dignitary, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrDignitaryNameMissing
	}

	item := db.Dignitary{
		Name:        strings.TrimSpace(input.Name),
		Designation: strings.TrimSpace(input.Designation),
		PhotoURL:    strings.TrimSpace(input.PhotoURL),
		Message:     SanitizeHTML(input.Message),
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
func (s *DignitaryService) Update(id uint, patch DignitaryPatch) (*db.Dignitary, error) {
	var item db.Dignitary
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDignitaryNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Designation != nil {
		item.Designation = strings.TrimSpace(*patch.Designation)
	}
	if patch.PhotoURL != nil {
		item.PhotoURL = strings.TrimSpace(*patch.PhotoURL)
	}
	if patch.Message != nil {
		item.Message = SanitizeHTML(*patch.Message)
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.Name == "" {
		return nil, ErrDignitaryNameMissing
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a dignitary and returns the removed row.
func (s *DignitaryService) Delete(id uint) (*db.Dignitary, error) {
	var item db.Dignitary
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDignitaryNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
