package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles login and the Google sign-in exchange.
type authHandler struct {
	userService   portssvc.UserSvc
	tokenService  portssvc.TokenSvc
	googleService portssvc.GoogleOAuthSvc
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:   services.User,
		tokenService:  services.Token,
		googleService: services.GoogleOAuth,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and the
// Google code exchange share one per-IP limit of 5 requests a minute.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limit := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.POST("/google/exchange-code", limit, h.exchangeCodeGoogle)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user with email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.SuccessResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, err, "failed to authenticate")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("failed to sign access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("failed to generate token"))
		return
	}

	logger.Info("user logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.Success(dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}))
}

// exchangeCodeRequest is the body of the Google code-exchange endpoint.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for an access token
// @Description Exchanges the authorization code from the Google sign-in flow for an application JWT, provisioning the account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.SuccessResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("authorization code is required"))
		return
	}

	oauth2Token, err := h.googleService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("invalid or expired authorization code"))
		return
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, dto.Error("failed to retrieve identity from Google"))
		return
	}

	payload, err := h.googleService.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Warn("failed to validate Google ID token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.Fail("invalid Google identity token"))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("Google account has no email address"))
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, email, name)
	if err != nil {
		respondError(c, logger, err, "failed to resolve Google account")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("failed to sign access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("failed to generate token"))
		return
	}

	logger.Info("google sign-in completed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.Success(dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}))
}
