package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type tribePayload struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Summary   string `json:"summary"`
	BannerURL string `json:"banner"`
	Content   string `json:"content"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func (p tribePayload) toInput() service.TribeInput {
	return service.TribeInput{
		Name:      p.Name,
		Slug:      p.Slug,
		Summary:   p.Summary,
		BannerURL: p.BannerURL,
		Content:   p.Content,
		SortOrder: p.SortOrder,
		Active:    p.Active,
	}
}

type tribePatchPayload struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	Summary   *string `json:"summary"`
	BannerURL *string `json:"banner"`
	Content   *string `json:"content"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

func (p tribePatchPayload) toPatch() service.TribePatch {
	return service.TribePatch{
		Name:      p.Name,
		Slug:      p.Slug,
		Summary:   p.Summary,
		BannerURL: p.BannerURL,
		Content:   p.Content,
		SortOrder: p.SortOrder,
		Active:    p.Active,
	}
}

// ListTribes returns active tribes for the public tribes page.
func (a *API) ListTribes(c *gin.Context) {
	items, err := a.tribes.ListPublic()
	if err != nil {
		a.respondInternal(c, "list tribes failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListTribesAdmin returns every tribe, inactive included.
func (a *API) ListTribesAdmin(c *gin.Context) {
	items, err := a.tribes.ListAll()
	if err != nil {
		a.respondInternal(c, "list tribes failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// GetTribe resolves a tribe by numeric id or by slug.
func (a *API) GetTribe(c *gin.Context) {
	ref := c.Param("id")

	var err error
	if id, parseErr := strconv.ParseUint(ref, 10, 32); parseErr == nil {
		item, getErr := a.tribes.Get(uint(id))
		if getErr == nil {
			respondData(c, http.StatusOK, item)
			return
		}
		err = getErr
	} else {
		item, getErr := a.tribes.GetBySlug(ref)
		if getErr == nil {
			respondData(c, http.StatusOK, item)
			return
		}
		err = getErr
	}

	if errors.Is(err, service.ErrTribeNotFound) {
		respondError(c, http.StatusNotFound, "tribe not found")
		return
	}
	a.respondInternal(c, "get tribe failed", err)
}

// CreateTribe inserts a new tribe.
func (a *API) CreateTribe(c *gin.Context) {
	var payload tribePayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.tribes.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTribeNameMissing):
			respondError(c, http.StatusBadRequest, "tribe name is required")
		case errors.Is(err, service.ErrTribeSlugTaken):
			respondError(c, http.StatusBadRequest, "tribe slug is already in use")
		case errors.Is(err, service.ErrTribeContentInvalid):
			respondError(c, http.StatusBadRequest, "tribe content must be a JSON block list")
		default:
			a.respondInternal(c, "create tribe failed", err)
		}
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateTribe applies a partial update to a tribe.
func (a *API) UpdateTribe(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid tribe id")
		return
	}

	var payload tribePatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.tribes.Update(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTribeNotFound):
			respondError(c, http.StatusNotFound, "tribe not found")
		case errors.Is(err, service.ErrTribeNameMissing):
			respondError(c, http.StatusBadRequest, "tribe name is required")
		case errors.Is(err, service.ErrTribeSlugTaken):
			respondError(c, http.StatusBadRequest, "tribe slug is already in use")
		case errors.Is(err, service.ErrTribeContentInvalid):
			respondError(c, http.StatusBadRequest, "tribe content must be a JSON block list")
		default:
			a.respondInternal(c, "update tribe failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteTribe removes a tribe and returns the removed row.
func (a *API) DeleteTribe(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid tribe id")
		return
	}

	item, err := a.tribes.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrTribeNotFound) {
			respondError(c, http.StatusNotFound, "tribe not found")
			return
		}
		a.respondInternal(c, "delete tribe failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}
