package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryCategoryCreateDerivesSlug(t *testing.T) {
	svc := NewGalleryService(setupTestDB(t))

	cat, err := svc.CreateCategory(GalleryCategoryInput{Name: "Cultural Events"})
	require.NoError(t, err)
	assert.Equal(t, "cultural-events", cat.Slug)
}

func TestGalleryImageRequiresExistingCategory(t *testing.T) {
	svc := NewGalleryService(setupTestDB(t))

	_, err := svc.CreateImage(GalleryImageInput{CategoryID: 42, ImageURL: "/img.jpg"})
	assert.ErrorIs(t, err, ErrGalleryCategoryNotFound)
}

func TestGalleryImageListFiltersByCategoryAndActive(t *testing.T) {
	svc := NewGalleryService(setupTestDB(t))

	events, err := svc.CreateCategory(GalleryCategoryInput{Name: "Events"})
	require.NoError(t, err)
	campus, err := svc.CreateCategory(GalleryCategoryInput{Name: "Campus"})
	require.NoError(t, err)

	visible, err := svc.CreateImage(GalleryImageInput{CategoryID: events.ID, ImageURL: "/a.jpg", SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.CreateImage(GalleryImageInput{CategoryID: events.ID, ImageURL: "/b.jpg", Active: boolPtr(false)})
	require.NoError(t, err)
	_, err = svc.CreateImage(GalleryImageInput{CategoryID: campus.ID, ImageURL: "/c.jpg"})
	require.NoError(t, err)

	items, err := svc.ListImagesPublic(events.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, visible.ID, items[0].ID)

	all, err := svc.ListImagesAll(events.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	everything, err := svc.ListImagesPublic(0)
	require.NoError(t, err)
	assert.Len(t, everything, 2)
}

func TestGalleryImageMoveBetweenCategories(t *testing.T) {
	svc := NewGalleryService(setupTestDB(t))

	events, err := svc.CreateCategory(GalleryCategoryInput{Name: "Events"})
	require.NoError(t, err)
	campus, err := svc.CreateCategory(GalleryCategoryInput{Name: "Campus"})
	require.NoError(t, err)

	img, err := svc.CreateImage(GalleryImageInput{CategoryID: events.ID, ImageURL: "/a.jpg"})
	require.NoError(t, err)

	moved, err := svc.UpdateImage(img.ID, GalleryImagePatch{CategoryID: &campus.ID})
	require.NoError(t, err)
	assert.Equal(t, campus.ID, moved.CategoryID)

	var missing uint = 9999
	_, err = svc.UpdateImage(img.ID, GalleryImagePatch{CategoryID: &missing})
	assert.ErrorIs(t, err, ErrGalleryCategoryNotFound)
}

func TestGalleryCategoryDeleteLeavesImages(t *testing.T) {
	svc := NewGalleryService(setupTestDB(t))

	cat, err := svc.CreateCategory(GalleryCategoryInput{Name: "Events"})
	require.NoError(t, err)
	img, err := svc.CreateImage(GalleryImageInput{CategoryID: cat.ID, ImageURL: "/a.jpg"})
	require.NoError(t, err)

	deleted, err := svc.DeleteCategory(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, deleted.ID)

	// no cascade: the orphaned image row stays
	still, err := svc.GetImage(img.ID)
	require.NoError(t, err)
	assert.Equal(t, img.ID, still.ID)
}
