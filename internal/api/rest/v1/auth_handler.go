package v1

import (
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling login and token lifecycle operations
type AuthHandler interface {
	Login(ctx *gin.Context)
	IssueToken(ctx *gin.Context)
	ListTokens(ctx *gin.Context)
	RevokeToken(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles the POST request to exchange credentials for a bearer token
// @Summary Log in with email and password
// @Description Verify credentials and issue an opaque bearer token. The plain token is returned exactly once.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid login data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	plainToken, token, err := handler.authService.Login(ctx.Request.Context(), request.Email, request.Password, request.TokenName)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid credentials"
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	loginResponse := LoginResponse{
		Token:    plainToken,
		Metadata: newTokenResponse(token),
	}

	ctx.JSON(http.StatusOK, loginResponse)
}

// IssueToken handles the POST request to issue an extra API token
// @Summary Issue an API token for a user
// @Description Issue an additional bearer token for an existing user. Employees may only issue tokens for themselves.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body IssueTokenRequest true "Token Data"
// @Success 201 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/tokens [post]
func (handler *authHandler) IssueToken(ctx *gin.Context) {
	var request IssueTokenRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid token data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	identity := currentIdentity(ctx)
	if request.UserID != identity.UserID && !identity.IsAdmin() {
		var errorResponse ErrorResponse
		errorResponse.Message = "tokens for other users require the admin role"
		ctx.JSON(http.StatusForbidden, errorResponse)
		return
	}

	plainToken, token, err := handler.authService.IssueToken(ctx.Request.Context(), identity.LicenseID, request.UserID, request.Name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error issuing token: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	issueResponse := LoginResponse{
		Token:    plainToken,
		Metadata: newTokenResponse(token),
	}

	ctx.JSON(http.StatusCreated, issueResponse)
}

// ListTokens handles the GET request to list a user's API tokens
// @Summary List API tokens for a user
// @Description Fetch token metadata for the given user, defaulting to the caller. Employees may only list their own tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Param userId query string false "User ID (defaults to the caller)"
// @Success 200 {array} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/tokens [get]
func (handler *authHandler) ListTokens(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	userID := identity.UserID
	if queryUserID := ctx.Query("userId"); len(queryUserID) > 0 {
		userID = queryUserID
	}

	if userID != identity.UserID && !identity.IsAdmin() {
		var errorResponse ErrorResponse
		errorResponse.Message = "tokens of other users require the admin role"
		ctx.JSON(http.StatusForbidden, errorResponse)
		return
	}

	tokens, err := handler.authService.ListTokens(ctx.Request.Context(), identity.LicenseID, userID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []TokenResponse{}
	for _, token := range tokens {
		listResponse = append(listResponse, newTokenResponse(token))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// RevokeToken handles the DELETE request to revoke an API token
// @Summary Revoke an API token by ID
// @Description Delete one token, ending the sessions authenticated with it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param id path string true "Token ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/tokens/{id} [delete]
func (handler *authHandler) RevokeToken(ctx *gin.Context) {
	tokenID := ctx.Param("id")
	identity := currentIdentity(ctx)

	if err := handler.authService.RevokeToken(ctx.Request.Context(), identity.LicenseID, tokenID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error revoking token with id %s", tokenID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("revoked token with id %s", tokenID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
