package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"github.com/gin-gonic/gin"
)

func slugParam(slug string) gin.Params {
	return gin.Params{{Key: "slug", Value: slug}}
}

func TestUpsertPageCreateThenUpdate(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPut, "/api/admin/pages/about", map[string]any{
		"title":   "About the Institute",
		"content": "<p>Founded in 1972.</p>",
	}, slugParam("about"))
	api.UpsertPage(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first upsert, got %d (body %s)", w.Code, w.Body.String())
	}

	var created db.Page
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &created); err != nil {
		t.Fatalf("failed to decode page: %v", err)
	}

	c, w = jsonContext(t, http.MethodPut, "/api/admin/pages/about", map[string]any{
		"title":   "About Us",
		"content": "<p>Founded in 1972, Gangtok.</p>",
	}, slugParam("about"))
	api.UpsertPage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on second upsert, got %d", w.Code)
	}
	var updated db.Page
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &updated); err != nil {
		t.Fatalf("failed to decode page: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected upsert to reuse row %d, got %d", created.ID, updated.ID)
	}
	if updated.Title != "About Us" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestGetPageMissing(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodGet, "/api/pages/nope", nil, slugParam("nope"))
	api.GetPage(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success || env.Error == "" {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
}

func TestUpsertPageRequiresSlug(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPut, "/api/admin/pages/", map[string]any{
		"title": "Orphan",
	}, slugParam(""))
	api.UpsertPage(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeletePageReturnsRow(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPut, "/api/admin/pages/history", map[string]any{
		"title":   "History",
		"content": "<p>Archive.</p>",
	}, slugParam("history"))
	api.UpsertPage(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to seed page: %d", w.Code)
	}

	c, w = jsonContext(t, http.MethodDelete, "/api/admin/pages/history", nil, slugParam("history"))
	api.DeletePage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var removed db.Page
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &removed); err != nil {
		t.Fatalf("failed to decode page: %v", err)
	}
	if removed.Slug != "history" {
		t.Fatalf("expected removed row in response, got %+v", removed)
	}

	c, w = jsonContext(t, http.MethodGet, "/api/pages/history", nil, slugParam("history"))
	api.GetPage(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected page to be gone, got %d", w.Code)
	}
}
