package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/service/auth"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	svc    *auth.Service
	logger *zap.Logger
}

// NewAuthHandler constructs the auth HTTP adapter.
func NewAuthHandler(svc *auth.Service, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{svc: svc, logger: logger}
}

type registerRequest struct {
	FullName        string `json:"fullName"`
	FarmName        string `json:"farmName"`
	Location        string `json:"location"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicUser strips the password hash before a user leaves the API.
func publicUser(u models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"fullName":  u.FullName,
		"farmName":  u.FarmName,
		"location":  u.Location,
		"email":     u.Email,
		"createdAt": u.CreatedAt,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), auth.RegisterInput{
		FullName:        req.FullName,
		FarmName:        req.FarmName,
		Location:        req.Location,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    publicUser(user),
	})
}

// Login verifies credentials and opens the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    publicUser(user),
	})
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		h.logger.Error("failed to clear session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the active session user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Current()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, auth.ErrUnknownEmail), errors.Is(err, auth.ErrWrongPassword):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrWeakPassword):
		status = http.StatusBadRequest
	default:
		h.logger.Error("auth operation failed", zap.Error(err))
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
