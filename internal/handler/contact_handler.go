package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// SubmitContact stores a public contact form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload) {
		return
	}

	item, err := a.contacts.Submit(c.Request.Context(), service.ContactInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Message:   payload.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactFieldMissing) {
			respondError(c, http.StatusBadRequest, "first name, email and message are required")
			return
		}
		a.respondInternal(c, "submit contact failed", err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

// ListContactMessages returns messages for the admin inbox, newest first.
// ?unread=true narrows to unread rows.
func (a *API) ListContactMessages(c *gin.Context) {
	items, err := a.contacts.List(c.Query("unread") == "true")
	if err != nil {
		a.respondInternal(c, "list contact messages failed", err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// MarkContactMessageRead flips the read flag when an admin opens a message.
func (a *API) MarkContactMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	item, err := a.contacts.MarkRead(id)
	if err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			respondError(c, http.StatusNotFound, "contact message not found")
			return
		}
		a.respondInternal(c, "mark contact message read failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteContactMessage hard-deletes a message and returns the removed row.
func (a *API) DeleteContactMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	item, err := a.contacts.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			respondError(c, http.StatusNotFound, "contact message not found")
			return
		}
		a.respondInternal(c, "delete contact message failed", err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// DashboardStats returns per-entity row counts for the admin dashboard.
func (a *API) DashboardStats(c *gin.Context) {
	stats, err := a.stats.Collect()
	if err != nil {
		a.respondInternal(c, "collect dashboard stats failed", err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
