package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akum103/ats-resume-matcher/auth"
	"github.com/akum103/ats-resume-matcher/models"
)

// AuthHandler handles login for the configured user set
type AuthHandler struct {
	jwtService *auth.JWTService
	users      []string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtService *auth.JWTService, users []string) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		users:      users,
	}
}

// Login issues a token for one of the configured users
// @Summary Log in as a configured user
// @Description Select one of the configured users and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, ok := h.lookupUser(req.User)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Unknown user",
			Code:  http.StatusNotFound,
		})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// Users lists the configured users
// @Summary List users
// @Description List the user identifiers that can log in
// @Tags Auth
// @Produce json
// @Success 200 {object} models.UsersResponse "Configured users"
// @Router /auth/users [get]
func (h *AuthHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, models.UsersResponse{Users: h.users})
}

// Refresh extends the expiry of a valid token
// @Summary Refresh token
// @Description Exchange a valid token for one with extended expiry
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AuthResponse "Refreshed token"
// @Failure 401 {object} models.ErrorResponse "Invalid or expired token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(claims.User)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:     token,
		User:      claims.User,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// lookupUser resolves the requested user case-insensitively against the
// configured set, returning the canonical form
func (h *AuthHandler) lookupUser(requested string) (string, bool) {
	for _, user := range h.users {
		if strings.EqualFold(user, strings.TrimSpace(requested)) {
			return user, true
		}
	}
	return "", false
}
