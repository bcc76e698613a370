package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
)

func TestSubmitContactCreatesUnread(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPost, "/api/contact", map[string]string{
		"firstName": "Pema",
		"lastName":  "Bhutia",
		"email":     "pema@example.com",
		"message":   "Looking for the library opening hours.",
	}, nil)
	api.SubmitContact(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	var msg db.ContactMessage
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &msg); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	if msg.Read {
		t.Fatal("expected new message to be unread")
	}
}

func TestSubmitContactValidation(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPost, "/api/contact", map[string]string{
		"firstName": "Pema",
	}, nil)
	api.SubmitContact(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
}

func TestContactInboxFlow(t *testing.T) {
	api := setupTestAPI(t)

	for _, m := range []string{"first", "second"} {
		c, w := jsonContext(t, http.MethodPost, "/api/contact", map[string]string{
			"firstName": "Visitor",
			"email":     "visitor@example.com",
			"message":   m,
		}, nil)
		api.SubmitContact(c)
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to seed message: %d", w.Code)
		}
	}

	c, w := jsonContext(t, http.MethodGet, "/api/admin/messages?unread=true", nil, nil)
	api.ListContactMessages(c)
	var inbox []db.ContactMessage
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &inbox); err != nil {
		t.Fatalf("failed to decode inbox: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 unread messages, got %d", len(inbox))
	}

	c, w = jsonContext(t, http.MethodPut, "/api/admin/messages/1/read", nil, idParam(inbox[0].ID))
	api.MarkContactMessageRead(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	c, w = jsonContext(t, http.MethodGet, "/api/admin/messages?unread=true", nil, nil)
	api.ListContactMessages(c)
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &inbox); err != nil {
		t.Fatalf("failed to decode inbox: %v", err)
	}
	if len(inbox) != 1 {
		t.Fatalf("expected 1 unread message after marking, got %d", len(inbox))
	}
}

func TestDashboardStatsCountsUnread(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPost, "/api/contact", map[string]string{
		"firstName": "Visitor",
		"email":     "visitor@example.com",
		"message":   "hello",
	}, nil)
	api.SubmitContact(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to seed message: %d", w.Code)
	}

	c, w = jsonContext(t, http.MethodGet, "/api/admin/stats", nil, nil)
	api.DashboardStats(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats map[string]int64
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats["unreadMessages"] != 1 {
		t.Fatalf("expected 1 unread message in stats, got %+v", stats)
	}
}
