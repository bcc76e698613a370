package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type pagePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GetPage returns a content page by slug.
func (a *API) GetPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.respondInternal(c, "get page failed", err)
		return
	}
	respondData(c, http.StatusOK, page)
}

// ListPagesAdmin returns every stored page.
func (a *API) ListPagesAdmin(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.respondInternal(c, "list pages failed", err)
		return
	}
	respondData(c, http.StatusOK, pages)
}

// UpsertPage creates or replaces the content stored under a slug. This is the
// one endpoint where create and update share a single idempotent PUT.
func (a *API) UpsertPage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload) {
		return
	}

	page, created, err := a.pages.Upsert(c.Param("slug"), service.PageInput{
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrPageSlugMissing) {
			respondError(c, http.StatusBadRequest, "page slug is required")
			return
		}
		a.respondInternal(c, "upsert page failed", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondData(c, status, page)
}

// DeletePage removes a page and returns the removed row.
func (a *API) DeletePage(c *gin.Context) {
	page, err := a.pages.Delete(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.respondInternal(c, "delete page failed", err)
		return
	}
	respondData(c, http.StatusOK, page)
}
