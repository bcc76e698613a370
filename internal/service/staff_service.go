package service

import (
	"errors"
	"strings"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrStaffNameMissing = errors.New("staff member name is required")
)

// StaffService handles staff directory CRUD.
type StaffService struct {
	db *gorm.DB
}

// StaffInput represents fields accepted when creating a staff member.
type StaffInput struct {
	Name        string
	Designation string
	Department  string
	PhotoURL    string
	Email       string
	Phone       string
	SortOrder   int
	Active      *bool
}

// StaffPatch carries a partial update; nil fields are left untouched.
type StaffPatch struct {
	Name        *string
	Designation *string
	Department  *string
	PhotoURL    *string
	Email       *string
	Phone       *string
	SortOrder   *int
	Active      *bool
}

// NewStaffService creates a StaffService instance.
func NewStaffService(gdb *gorm.DB) *StaffService {
	return &StaffService{db: gdb}
}

// ListPublic returns active staff members in display order, optionally
// restricted to one department.
func (s *StaffService) ListPublic(department string) ([]db.StaffMember, error) {
	query := s.db.Where("active = ?", true)
	if dept := strings.TrimSpace(department); dept != "" {
		query = query.Where("department = ?", dept)
	}

	var items []db.StaffMember
	if err := query.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every staff member, inactive included.
func (s *StaffService) ListAll() ([]db.StaffMember, error) {
	var items []db.StaffMember
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a staff member by id.
func (s *StaffService) Get(id uint) (*db.StaffMember, error) {
	var item db.StaffMember
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new staff member.
func (s *StaffService) Create(input StaffInput) (*db.StaffMember, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrStaffNameMissing
	}

	item := db.StaffMember{
		Name:        strings.TrimSpace(input.Name),
		Designation: strings.TrimSpace(input.Designation),
		Department:  strings.TrimSpace(input.Department),
		PhotoURL:    strings.TrimSpace(input.PhotoURL),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
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
func (s *StaffService) Update(id uint, patch StaffPatch) (*db.StaffMember, error) {
	var item db.StaffMember
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Designation != nil {
		item.Designation = strings.TrimSpace(*patch.Designation)
	}
	if patch.Department != nil {
		item.Department = strings.TrimSpace(*patch.Department)
	}
	if patch.PhotoURL != nil {
		item.PhotoURL = strings.TrimSpace(*patch.PhotoURL)
	}
	if patch.Email != nil {
		item.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		item.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}

	if item.Name == "" {
		return nil, ErrStaffNameMissing
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a staff member and returns the removed row.
func (s *StaffService) Delete(id uint) (*db.StaffMember, error) {
	var item db.StaffMember
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
