package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroSlideCreateAssignsIDAndDefaults(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	item, err := svc.Create(HeroSlideInput{ImageURL: "/x.jpg", SortOrder: 1})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.True(t, item.Active, "active should default to true")
	assert.False(t, item.CreatedAt.IsZero())
	assert.False(t, item.UpdatedAt.IsZero())
}

func TestHeroSlideCreateRequiresImage(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	_, err := svc.Create(HeroSlideInput{Title: "no image"})
	assert.ErrorIs(t, err, ErrHeroSlideImageMissing)
}

func TestHeroSlidePublicListFiltersAndOrders(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	second, err := svc.Create(HeroSlideInput{ImageURL: "/b.jpg", SortOrder: 2})
	require.NoError(t, err)
	first, err := svc.Create(HeroSlideInput{ImageURL: "/a.jpg", SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.Create(HeroSlideInput{ImageURL: "/hidden.jpg", SortOrder: 0, Active: boolPtr(false)})
	require.NoError(t, err)

	items, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHeroSlideCreateInactiveStoresInactive(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	item, err := svc.Create(HeroSlideInput{ImageURL: "/x.jpg", Active: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, item.Active, "returned row must reflect the stored state")

	stored, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active, "inactive flag must survive the insert")

	public, err := svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestHeroSlideSortOrderTiesBreakByInsertion(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	older, err := svc.Create(HeroSlideInput{ImageURL: "/1.jpg", SortOrder: 5})
	require.NoError(t, err)
	newer, err := svc.Create(HeroSlideInput{ImageURL: "/2.jpg", SortOrder: 5})
	require.NoError(t, err)

	items, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, older.ID, items[0].ID)
	assert.Equal(t, newer.ID, items[1].ID)
}

func TestHeroSlideUpdateMergesPartially(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	item, err := svc.Create(HeroSlideInput{Title: "Welcome", ImageURL: "/x.jpg", SortOrder: 1})
	require.NoError(t, err)
	createdAt := item.CreatedAt

	time.Sleep(10 * time.Millisecond)
	updated, err := svc.Update(item.ID, HeroSlidePatch{Active: boolPtr(false)})
	require.NoError(t, err)

	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Welcome", updated.Title, "untouched field should survive")
	assert.Equal(t, "/x.jpg", updated.ImageURL)
	assert.False(t, updated.Active)
	assert.True(t, createdAt.Equal(updated.CreatedAt), "createdAt must not move on update")
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt))

	public, err := svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, public, "deactivated slide must leave the public list")
}

func TestHeroSlideUpdateRejectsClearingImage(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	item, err := svc.Create(HeroSlideInput{ImageURL: "/x.jpg"})
	require.NoError(t, err)

	_, err = svc.Update(item.ID, HeroSlidePatch{ImageURL: strPtr("  ")})
	assert.ErrorIs(t, err, ErrHeroSlideImageMissing)
}

func TestHeroSlideDeleteReturnsRowAndIsPermanent(t *testing.T) {
	svc := NewHeroSlideService(setupTestDB(t))

	item, err := svc.Create(HeroSlideInput{ImageURL: "/x.jpg"})
	require.NoError(t, err)

	deleted, err := svc.Delete(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, deleted.ID)

	_, err = svc.Get(item.ID)
	assert.ErrorIs(t, err, ErrHeroSlideNotFound)

	_, err = svc.Delete(item.ID)
	assert.ErrorIs(t, err, ErrHeroSlideNotFound, "missing id is not-found, not a server error")
}
