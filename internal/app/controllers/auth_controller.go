package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aditya/universe/internal/app/models/dto"
	"github.com/aditya/universe/internal/app/services"
	"github.com/aditya/universe/internal/middleware"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// AuthController handles signup and login. No token or session is issued;
// success returns the public account projection only.
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /signup
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Schema validation (missing field, short password) is a
		// store-layer concern and surfaces as a server fault, not a
		// bad request.
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()), "Server error during signup")
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Server error during signup")
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Login handles POST /login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// An absent email or password can never match an account
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials, "Server error during login")
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Server error during login")
		return
	}

	ctx.JSON(http.StatusOK, user)
}
