package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// ListSettings returns the flat settings map that drives the public site
// chrome (name, tagline, contact block, marquee).
func (a *API) ListSettings(c *gin.Context) {
	values, err := a.settings.GetAll()
	if err != nil {
		a.respondInternal(c, "list settings failed", err)
		return
	}
	respondData(c, http.StatusOK, values)
}

// SetSettings upserts the posted key/value pairs and returns the full map.
func (a *API) SetSettings(c *gin.Context) {
	var values map[string]string
	if !bindJSON(c, &values) {
		return
	}

	stored, err := a.settings.SetAll(values)
	if err != nil {
		a.respondInternal(c, "set settings failed", err)
		return
	}
	respondData(c, http.StatusOK, stored)
}

// DeleteSetting removes a single key.
func (a *API) DeleteSetting(c *gin.Context) {
	key := c.Param("key")
	if err := a.settings.Delete(key); err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			respondError(c, http.StatusNotFound, "setting not found")
			return
		}
		a.respondInternal(c, "delete setting failed", err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"key": key})
}

// LastUpdated reports the newest content modification timestamp for the
// public footer. Always succeeds; failed sub-queries fall back to now.
func (a *API) LastUpdated(c *gin.Context) {
	stamp := a.settings.LastUpdated(c.Request.Context())
	respondData(c, http.StatusOK, gin.H{"lastUpdated": stamp.UTC().Format(time.RFC3339)})
}

// IncrementVisitors bumps the vanity visitor counter.
func (a *API) IncrementVisitors(c *gin.Context) {
	count, err := a.settings.IncrementVisitors()
	if err != nil {
		a.respondInternal(c, "increment visitors failed", err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"count": count})
}

type visitorResetPayload struct {
	Count int64 `json:"count"`
}

// SetVisitors overwrites the visitor counter, e.g. for a reset to zero.
func (a *API) SetVisitors(c *gin.Context) {
	var payload visitorResetPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := a.settings.SetVisitors(payload.Count); err != nil {
		a.respondInternal(c, "set visitors failed", err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"count": payload.Count})
}
