package handler

import (
	"errors"
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"

	contextKeyUserID   = "current_user_id"
	contextKeyUsername = "current_username"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerPayload struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type identityView struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
}

// Login checks credentials and establishes a session cookie.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload) {
		return
	}

	user, err := a.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		a.respondInternal(c, "login failed", err)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	if err := session.Save(); err != nil {
		a.respondInternal(c, "session save failed", err)
		return
	}

	respondData(c, http.StatusOK, identityView{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	})
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.respondInternal(c, "session clear failed", err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"loggedOut": true})
}

// Session reports the current identity, or 401 when no session exists. The
// admin UI uses this to gate its routes.
func (a *API) Session(c *gin.Context) {
	session := sessions.Default(c)
	userID, ok := session.Get(sessionKeyUserID).(uint)
	if !ok || userID == 0 {
		respondError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	username, _ := session.Get(sessionKeyUsername).(string)
	respondData(c, http.StatusOK, identityView{ID: userID, Username: username})
}

// Register creates a new admin account. The route is only mounted when
// self-registration is enabled by configuration.
func (a *API) Register(c *gin.Context) {
	var payload registerPayload
	if !bindJSON(c, &payload) {
		return
	}

	user, err := a.users.Register(payload.Username, payload.Password, payload.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, "username and a password of at least 8 characters are required")
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusBadRequest, "username is already taken")
		default:
			a.respondInternal(c, "registration failed", err)
		}
		return
	}

	respondData(c, http.StatusCreated, identityView{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	})
}

// AuthRequired guards every mutating endpoint. On success the caller
// identity is injected into the request context; otherwise the request is
// aborted with 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(sessionKeyUserID).(uint)
		if !ok || userID == 0 {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, userID)
		if username, ok := session.Get(sessionKeyUsername).(string); ok {
			c.Set(contextKeyUsername, username)
		}
		c.Next()
	}
}
