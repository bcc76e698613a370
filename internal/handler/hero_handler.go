package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type heroSlidePayload struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image"`
	LinkURL   string `json:"link"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func (p heroSlidePayload) toInput() service.HeroSlideInput {
	return service.HeroSlideInput{
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		ImageURL:  p.ImageURL,
		LinkURL:   p.LinkURL,
		SortOrder: p.SortOrder,
		Active:    p.Active,
	}
}

type heroSlidePatchPayload struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  *string `json:"image"`
	LinkURL   *string `json:"link"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

func (p heroSlidePatchPayload) toPatch() service.HeroSlidePatch {
	return service.HeroSlidePatch{
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		ImageURL:  p.ImageURL,
		LinkURL:   p.LinkURL,
		SortOrder: p.SortOrder,
		Active:    p.Active,
	}
}

// ListHeroSlides returns active slides for the public carousel.
func (a *API) ListHeroSlides(c *gin.Context) {
	items, err := a.heroes.ListPublic()
	if err != nil {
		a.respondInternal(c, "list hero slides failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListHeroSlidesAdmin returns every slide, inactive included.
func (a *API) ListHeroSlidesAdmin(c *gin.Context) {
	items, err := a.heroes.ListAll()
	if err != nil {
		a.respondInternal(c, "list hero slides failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// GetHeroSlide returns a single slide by id.
func (a *API) GetHeroSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid slide id")
		return
	}

	item, err := a.heroes.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrHeroSlideNotFound) {
			respondError(c, http.StatusNotFound, "hero slide not found")
			return
		}
		a.respondInternal(c, "get hero slide failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// CreateHeroSlide inserts a new slide.
func (a *API) CreateHeroSlide(c *gin.Context) {
	var payload heroSlidePayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.heroes.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrHeroSlideImageMissing) {
			respondError(c, http.StatusBadRequest, "slide image is required")
			return
		}
		a.respondInternal(c, "create hero slide failed", err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateHeroSlide applies a partial update to a slide.
func (a *API) UpdateHeroSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid slide id")
		return
	}

	var payload heroSlidePatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.heroes.Update(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHeroSlideNotFound):
			respondError(c, http.StatusNotFound, "hero slide not found")
		case errors.Is(err, service.ErrHeroSlideImageMissing):
			respondError(c, http.StatusBadRequest, "slide image is required")
		default:
			a.respondInternal(c, "update hero slide failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteHeroSlide removes a slide and returns the removed row.
func (a *API) DeleteHeroSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid slide id")
		return
	}

	item, err := a.heroes.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrHeroSlideNotFound) {
			respondError(c, http.StatusNotFound, "hero slide not found")
			return
		}
		a.respondInternal(c, "delete hero slide failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}
