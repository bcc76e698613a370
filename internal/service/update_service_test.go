package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCreateFillsDefaults(t *testing.T) {
	svc := NewUpdateService(setupTestDB(t))

	before := time.Now().Add(-time.Second)
	item, err := svc.Create(UpdateInput{
		Title:   "Annual Cultural Festival",
		Content: "<p>The institute hosts its annual festival.</p><script>x()</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "annual-cultural-festival", item.Slug)
	assert.True(t, item.PublishedAt.After(before))
	assert.NotContains(t, item.Content, "<script>")
	assert.Equal(t, "The institute hosts its annual festival.", item.Excerpt)
}

func TestUpdateCreateRendersMarkdown(t *testing.T) {
	svc := NewUpdateService(setupTestDB(t))

	item, err := svc.Create(UpdateInput{
		Title:         "Library Hours",
		Content:       "# New hours\n\nOpen **daily** now.",
		ContentFormat: UpdateFormatMarkdown,
	})
	require.NoError(t, err)

	assert.Contains(t, item.Content, "<h1")
	assert.Contains(t, item.Content, "<strong>daily</strong>")
}

func TestUpdateCreateRejectsUnknownFormat(t *testing.T) {
	svc := NewUpdateService(setupTestDB(t))

	_, err := svc.Create(UpdateInput{Title: "x", Content: "y", ContentFormat: "rtf"})
	assert.ErrorIs(t, err, ErrUpdateFormatInvalid)
}

func TestUpdatePublicFeedOrdersNewestFirst(t *testing.T) {
	svc := NewUpdateService(setupTestDB(t))

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	first, err := svc.Create(UpdateInput{Title: "older", PublishedAt: &older})
	require.NoError(t, err)
	second, err := svc.Create(UpdateInput{Title: "newer", PublishedAt: &newer})
	require.NoError(t, err)
	_, err = svc.Create(UpdateInput{Title: "draft", Active: boolPtr(false)})
	require.NoError(t, err)

	items, err := svc.ListPublic(0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	limited, err := svc.ListPublic(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}

func TestUpdateSlugConflict(t *testing.T) {
	svc := NewUpdateService(setupTestDB(t))

	_, err := svc.Create(UpdateInput{Title: "Notice"})
	require.NoError(t, err)

	_, err = svc.Create(UpdateInput{Title: "Second", Slug: "notice"})
	assert.ErrorIs(t, err, ErrUpdateSlugTaken)
}

func TestUpdatePatchKeepsIDAndSlugResolution(t *testing.T) {
	svc := NewUpdateService(setupTestDB(t))

	item, err := svc.Create(UpdateInput{Title: "Admissions Open", SortOrder: 3})
	require.NoError(t, err)

	updated, err := svc.Update(item.ID, UpdatePatch{SortOrder: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Admissions Open", updated.Title)
	assert.Equal(t, 7, updated.SortOrder)

	bySlug, err := svc.GetBySlug("admissions-open")
	require.NoError(t, err)
	assert.Equal(t, item.ID, bySlug.ID)
}
