package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck pings the database for deployment and monitoring probes.
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database handle unavailable")
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	respondData(c, http.StatusOK, gin.H{"status": "ok"})
}
