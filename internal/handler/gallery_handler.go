package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type galleryCategoryPayload struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CoverURL  string `json:"cover"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func (p galleryCategoryPayload) toInput() service.GalleryCategoryInput {
	return service.GalleryCategoryInput{
		Name:      p.Name,
		Slug:      p.Slug,
		CoverURL:  p.CoverURL,
		SortOrder: p.SortOrder,
		Active:    p.Active,
	}
}

type galleryCategoryPatchPayload struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	CoverURL  *string `json:"cover"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

func (p galleryCategoryPatchPayload) toPatch() service.GalleryCategoryPatch {
	return service.GalleryCategoryPatch{
		Name:      p.Name,
		Slug:      p.Slug,
		CoverURL:  p.CoverURL,
		SortOrder: p.SortOrder,
		Active:    p.Active,
	}
}

type galleryImagePayload struct {
	CategoryID uint   `json:"categoryId"`
	Title      string `json:"title"`
	Caption    string `json:"caption"`
	ImageURL   string `json:"image"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SortOrder  int    `json:"sortOrder"`
	Active     *bool  `json:"active"`
}

func (p galleryImagePayload) toInput() service.GalleryImageInput {
	return service.GalleryImageInput{
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Caption:    p.Caption,
		ImageURL:   p.ImageURL,
		Width:      p.Width,
		Height:     p.Height,
		SortOrder:  p.SortOrder,
		Active:     p.Active,
	}
}

type galleryImagePatchPayload struct {
	CategoryID *uint   `json:"categoryId"`
	Title      *string `json:"title"`
	Caption    *string `json:"caption"`
	ImageURL   *string `json:"image"`
	Width      *int    `json:"width"`
	Height     *int    `json:"height"`
	SortOrder  *int    `json:"sortOrder"`
	Active     *bool   `json:"active"`
}

func (p galleryImagePatchPayload) toPatch() service.GalleryImagePatch {
	return service.GalleryImagePatch{
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Caption:    p.Caption,
		ImageURL:   p.ImageURL,
		Width:      p.Width,
		Height:     p.Height,
		SortOrder:  p.SortOrder,
		Active:     p.Active,
	}
}

// ListGalleryCategories returns active categories for the public gallery.
func (a *API) ListGalleryCategories(c *gin.Context) {
	items, err := a.galleries.ListCategoriesPublic()
	if err != nil {
		a.respondInternal(c, "list gallery categories failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListGalleryCategoriesAdmin returns every category, inactive included.
func (a *API) ListGalleryCategoriesAdmin(c *gin.Context) {
	items, err := a.galleries.ListCategoriesAll()
	if err != nil {
		a.respondInternal(c, "list gallery categories failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// CreateGalleryCategory inserts a new category.
func (a *API) CreateGalleryCategory(c *gin.Context) {
	var payload galleryCategoryPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.galleries.CreateCategory(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryCategoryNameMissing):
			respondError(c, http.StatusBadRequest, "category name is required")
		case errors.Is(err, service.ErrGalleryCategorySlugTaken):
			respondError(c, http.StatusBadRequest, "category slug is already in use")
		default:
			a.respondInternal(c, "create gallery category failed", err)
		}
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateGalleryCategory applies a partial update to a category.
func (a *API) UpdateGalleryCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var payload galleryCategoryPatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.galleries.UpdateCategory(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryCategoryNotFound):
			respondError(c, http.StatusNotFound, "gallery category not found")
		case errors.Is(err, service.ErrGalleryCategoryNameMissing):
			respondError(c, http.StatusBadRequest, "category name is required")
		case errors.Is(err, service.ErrGalleryCategorySlugTaken):
			respondError(c, http.StatusBadRequest, "category slug is already in use")
		default:
			a.respondInternal(c, "update gallery category failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteGalleryCategory removes a category and returns the removed row.
func (a *API) DeleteGalleryCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	item, err := a.galleries.DeleteCategory(id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryCategoryNotFound) {
			respondError(c, http.StatusNotFound, "gallery category not found")
			return
		}
		a.respondInternal(c, "delete gallery category failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// ListGalleryImages returns active images, optionally filtered with
// ?category_id=.
func (a *API) ListGalleryImages(c *gin.Context) {
	items, err := a.galleries.ListImagesPublic(parseUintQuery(c, "category_id"))
	if err != nil {
		a.respondInternal(c, "list gallery images failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// ListGalleryImagesAdmin returns every image, inactive included.
func (a *API) ListGalleryImagesAdmin(c *gin.Context) {
	items, err := a.galleries.ListImagesAll(parseUintQuery(c, "category_id"))
	if err != nil {
		a.respondInternal(c, "list gallery images failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// CreateGalleryImage inserts a new image.
func (a *API) CreateGalleryImage(c *gin.Context) {
	var payload galleryImagePayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.galleries.CreateImage(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryImageURLMissing):
			respondError(c, http.StatusBadRequest, "gallery image url is required")
		case errors.Is(err, service.ErrGalleryCategoryNotFound):
			respondError(c, http.StatusBadRequest, "gallery category does not exist")
		default:
			a.respondInternal(c, "create gallery image failed", err)
		}
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateGalleryImage applies a partial update to an image.
func (a *API) UpdateGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	var payload galleryImagePatchPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.galleries.UpdateImage(id, payload.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryImageNotFound):
			respondError(c, http.StatusNotFound, "gallery image not found")
		case errors.Is(err, service.ErrGalleryImageURLMissing):
			respondError(c, http.StatusBadRequest, "gallery image url is required")
		case errors.Is(err, service.ErrGalleryCategoryNotFound):
			respondError(c, http.StatusBadRequest, "gallery category does not exist")
		default:
			a.respondInternal(c, "update gallery image failed", err)
		}
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteGalleryImage removes an image and returns the removed row.
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	item, err := a.galleries.DeleteImage(id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryImageNotFound) {
			respondError(c, http.StatusNotFound, "gallery image not found")
			return
		}
		a.respondInternal(c, "delete gallery image failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}
