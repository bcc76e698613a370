package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type staffPayload struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	PhotoURL    string `json:"photo"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SortOrder   int    `json:"sortOrder"`
	Active      *bool  `json:"active"`
}

func (p staffPayload) toInput() service.StaffInput {
	return service.StaffInput{
		Name:        p.Name,
		Designation: p.Designation,
		Department:  p.Department,
		PhotoURL:    p.PhotoURL,
		Email:       p.Email,
		Phone:       p.Phone,
		SortOrder:   p.SortOrder,
		Active:      p.Active,
	}
}

type staffPatchPayload struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Department  *string `json:"department"`
	PhotoURL    *string `json:"photo"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	SortOrder   *int    `json:"sortOrder"`
	Active      *bool   `json:"active"`
}

func (p staffPatchPayload) toPatch() service.StaffPatch {
	return service.StaffPatch{
		Name:        p.Name,
		Designation: p.Designation,
		Department:  p.Department,
		PhotoURL:    p.PhotoURL,
		Email:       p.Email,
		Phone:       p.Phone,
		SortOrder:   p.SortOrder,
		Active:      p.Active,
	}
}

// ListStaff returns active staff for the public directory. ?department=
// narrows to one department.
func (a *API) ListStaff(c *gin.Context) {
	items, err := a.staff.ListPublic(c.Query("department"))
	if err != nil {
		a.respondInternal(c, "list staff failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListStaffAdmin returns every staff member, inactive included.
func (a *API) ListStaffAdmin(c *gin.Context) {
	items, err := a.staff.ListAll()
	if err != nil {
		a.respondInternal(c, "list staff failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// GetStaffMember returns a single staff member by id.
func (a *API) GetStaffMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	item, err := a.staff.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			respondError(c, http.StatusNotFound, "staff member not found")
			return
		}
		a.respondInternal(c, "get staff member failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// CreateStaffMember inserts a new staff member.
func (a *API) CreateStaffMember(c *gin.Context) {
	var payload staffPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.staff.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrStaffNameMissing) {
			respondError(c, http.StatusBadRequest, "staff member name is required")
			return
		}
		a.respondInternal(c, "create staff member failed", err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateStaffMember applies a partial update to a staff member.
func (a *API) UpdateStaffMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	var payload staffPatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.staff.Update(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			respondError(c, http.StatusNotFound, "staff member not found")
		case errors.Is(err, service.ErrStaffNameMissing):
			respondError(c, http.StatusBadRequest, "staff member name is required")
		default:
			a.respondInternal(c, "update staff member failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteStaffMember removes a staff member and returns the removed row.
func (a *API) DeleteStaffMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	item, err := a.staff.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			respondError(c, http.StatusNotFound, "staff member not found")
			return
		}
		a.respondInternal(c, "delete staff member failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}
