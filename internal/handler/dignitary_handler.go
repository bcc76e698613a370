package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type dignitaryPayload struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	PhotoURL    string `json:"photo"`
	Message     string `json:"message"`
	SortOrder   int    `json:"sortOrder"`
	Active      *bool  `json:"active"`
}

func (p dignitaryPayload) toInput() service.DignitaryInput {
	return service.DignitaryInput{
		Name:        p.Name,
		Designation: p.Designation,
		PhotoURL:    p.PhotoURL,
		Message:     p.Message,
		SortOrder:   p.SortOrder,
		Active:      p.Active,
	}
}

type dignitaryPatchPayload struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	PhotoURL    *string `json:"photo"`
	Message     *string `json:"message"`
	SortOrder   *int    `json:"sortOrder"`
	Active      *bool   `json:"active"`
}

func (p dignitaryPatchPayload) toPatch() service.DignitaryPatch {
	return service.DignitaryPatch{
		Name:        p.Name,
		Designation: p.Designation,
		PhotoURL:    p.PhotoURL,
		Message:     p.Message,
		SortOrder:   p.SortOrder,
		Active:      p.Active,
	}
}

// ListDignitaries returns active dignitaries for the public pages.
func (a *API) ListDignitaries(c *gin.Context) {
	items, err := a.dignitaries.ListPublic()
	if err != nil {
		a.respondInternal(c, "list dignitaries failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListDignitariesAdmin returns every dignitary, inactive included.
func (a *API) ListDignitariesAdmin(c *gin.Context) {
	items, err := a.dignitaries.ListAll()
	if err != nil {
		a.respondInternal(c, "list dignitaries failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// GetDignitary returns a single dignitary by id.
func (a *API) GetDignitary(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid dignitary id")
		return
	}

	item, err := a.dignitaries.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrDignitaryNotFound) {
			respondError(c, http.StatusNotFound, "dignitary not found")
			return
		}
		a.respondInternal(c, "get dignitary failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// CreateDignitary inserts a new dignitary.
func (a *API) CreateDignitary(c *gin.Context) {
	var payload dignitaryPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.dignitaries.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrDignitaryNameMissing) {
			respondError(c, http.StatusBadRequest, "dignitary name is required")
			return
		}
		a.respondInternal(c, "create dignitary failed", err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateDignitary applies a partial update to a dignitary.
func (a *API) UpdateDignitary(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid dignitary id")
		return
	}

	var payload dignitaryPatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.dignitaries.Update(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDignitaryNotFound):
			respondError(c, http.StatusNotFound, "dignitary not found")
		case errors.Is(err, service.ErrDignitaryNameMissing):
			respondError(c, http.StatusBadRequest, "dignitary name is required")
		default:
			a.respondInternal(c, "update dignitary failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteDignitary removes a dignitary and returns the removed row.
func (a *API) DeleteDignitary(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid dignitary id")
		return
	}

	item, err := a.dignitaries.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrDignitaryNotFound) {
			respondError(c, http.StatusNotFound, "dignitary not found")
			return
		}
		a.respondInternal(c, "delete dignitary failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}
