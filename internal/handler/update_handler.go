package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type updatePayload struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	ContentFormat string     `json:"contentFormat"`
	CoverURL      string     `json:"cover"`
	PublishedAt   *time.Time `json:"publishedAt"`
	SortOrder     int        `json:"sortOrder"`
	Active        *bool      `json:"active"`
}

func (p updatePayload) toInput() service.UpdateInput {
	return service.UpdateInput{
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		ContentFormat: p.ContentFormat,
		CoverURL:      p.CoverURL,
		PublishedAt:   p.PublishedAt,
		SortOrder:     p.SortOrder,
		Active:        p.Active,
	}
}

type updatePatchPayload struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	ContentFormat *string    `json:"contentFormat"`
	CoverURL      *string    `json:"cover"`
	PublishedAt   *time.Time `json:"publishedAt"`
	SortOrder     *int       `json:"sortOrder"`
	Active        *bool      `json:"active"`
}

func (p updatePatchPayload) toPatch() service.UpdatePatch {
	return service.UpdatePatch{
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		ContentFormat: p.ContentFormat,
		CoverURL:      p.CoverURL,
		PublishedAt:   p.PublishedAt,
		SortOrder:     p.SortOrder,
		Active:        p.Active,
	}
}

// ListUpdates returns the public news feed, newest first. ?limit= caps the
// result.
func (a *API) ListUpdates(c *gin.Context) {
	items, err := a.updates.ListPublic(parseIntQuery(c, "limit", 0))
	if err != nil {
		a.respondInternal(c, "list updates failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListUpdatesAdmin returns every update, inactive included.
func (a *API) ListUpdatesAdmin(c *gin.Context) {
	items, err := a.updates.ListAll()
	if err != nil {
		a.respondInternal(c, "list updates failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// GetUpdate resolves an update by numeric id or by slug.
func (a *API) GetUpdate(c *gin.Context) {
	ref := c.Param("id")

	var err error
	if id, parseErr := strconv.ParseUint(ref, 10, 32); parseErr == nil {
		item, getErr := a.updates.Get(uint(id))
		if getErr == nil {
			respondData(c, http.StatusOK, item)
			return
		}
		err = getErr
	} else {
		item, getErr := a.updates.GetBySlug(ref)
		if getErr == nil {
			respondData(c, http.StatusOK, item)
			return
		}
		err = getErr
	}

	if errors.Is(err, service.ErrUpdateNotFound) {
		respondError(c, http.StatusNotFound, "update not found")
		return
	}
	a.respondInternal(c, "get update failed", err)
}

// CreateUpdate inserts a new update.
func (a *API) CreateUpdate(c *gin.Context) {
	var payload updatePayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.updates.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUpdateTitleMissing):
			respondError(c, http.StatusBadRequest, "update title is required")
		case errors.Is(err, service.ErrUpdateSlugTaken):
			respondError(c, http.StatusBadRequest, "update slug is already in use")
		case errors.Is(err, service.ErrUpdateFormatInvalid):
			respondError(c, http.StatusBadRequest, "content format must be html or markdown")
		default:
			a.respondInternal(c, "create update failed", err)
		}
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateUpdate applies a partial update to an update post.
func (a *API) UpdateUpdate(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid update id")
		return
	}

	var payload updatePatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.updates.Update(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUpdateNotFound):
			respondError(c, http.StatusNotFound, "update not found")
		case errors.Is(err, service.ErrUpdateTitleMissing):
			respondError(c, http.StatusBadRequest, "update title is required")
		case errors.Is(err, service.ErrUpdateSlugTaken):
			respondError(c, http.StatusBadRequest, "update slug is already in use")
		case errors.Is(err, service.ErrUpdateFormatInvalid):
			respondError(c, http.StatusBadRequest, "content format must be html or markdown")
		default:
			a.respondInternal(c, "update update failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteUpdate removes an update and returns the removed row.
func (a *API) DeleteUpdate(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid update id")
		return
	}

	item, err := a.updates.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrUpdateNotFound) {
			respondError(c, http.StatusNotFound, "update not found")
			return
		}
		a.respondInternal(c, "delete update failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}
