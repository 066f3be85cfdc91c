package handler

import (
	"context"
	"net/http"

	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auth_handler.go -destination=mock_auth_service.go -package=handler

// TokenResolver maps an Authorization header to a logged-in user's
// email, or "" when the session is invalid.
type TokenResolver interface {
	ResolveEmail(bearerToken string) string
}

type AuthServiceInterface interface {
	TokenResolver
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(bearerToken string)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupHandler handles POST /api/auth/signup
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req helpers.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}

	if err := h.service.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("SignupHandler: registration failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "User registered successfully!")
	helpers.LogSuccess("SignupHandler", "user registered", map[string]any{"email": req.Email})
}

// LoginHandler handles POST /api/auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("LoginHandler: login failed", map[string]any{"email": req.Email})
		return
	}

	resp := helpers.AuthResponse{
		Message: "Login successful",
		Token:   token,
		Email:   req.Email,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "Login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"email": req.Email})
}

// LogoutHandler handles POST /api/auth/logout. Always succeeds,
// including for unknown or missing tokens.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.service.Logout(c.GetHeader("Authorization"))
	utils.JSONResponse(c, http.StatusOK, nil, "Logout successful")
}

// resolveSession extracts the logged-in email from the request or
// writes the standard 401 and returns false.
func resolveSession(c *gin.Context, auth TokenResolver, handlerName string) (string, bool) {
	email := auth.ResolveEmail(c.GetHeader("Authorization"))
	if email == "" {
		utils.Warn(handlerName+": unauthorized request", map[string]any{"path": c.Request.URL.Path})
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "Unauthorized: Invalid session.",
		})
		return "", false
	}
	return email, true
}
