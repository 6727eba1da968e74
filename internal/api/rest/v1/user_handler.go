package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user management operations
type UserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	SetActive(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// Create handles the POST request to add a user to the license
// @Summary Add a user to the license
// @Description Add a user with email, name, role and password. Fails when every seat of the license is occupied.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "User Data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (handler *userHandler) Create(ctx *gin.Context) {
	var request CreateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
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

	created, err := handler.userService.Create(ctx.Request.Context(), identity.LicenseID, request.Email, request.Name, request.Role, request.Password)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, licensing.ErrSeatLimitReached) {
			errorResponse.Message = "all license seats are occupied"
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error creating user: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(created))
}

// List handles the GET request to list the license's users
// @Summary List users of the license
// @Description Fetch all users belonging to the authenticated license.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [get]
func (handler *userHandler) List(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	listed, err := handler.userService.List(ctx.Request.Context(), identity.LicenseID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []UserResponse{}
	for _, user := range listed {
		listResponse = append(listResponse, newUserResponse(user))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a user by ID
// @Summary Retrieve a user by ID
// @Description Fetch one user of the authenticated license by ID.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID := ctx.Param("id")
	identity := currentIdentity(ctx)

	user, err := handler.userService.GetByID(ctx.Request.Context(), identity.LicenseID, userID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("user with id %s not found", userID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// SetActive handles the PATCH request to activate or deactivate a user
// @Summary Activate or deactivate a user
// @Description Toggle a user's active state. Activation re-checks the seat limit; deactivation revokes all of the user's tokens.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param requestBody body SetUserActiveRequest true "Active State"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id}/active [patch]
func (handler *userHandler) SetActive(ctx *gin.Context) {
	userID := ctx.Param("id")

	var request SetUserActiveRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
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

	updated, err := handler.userService.SetActive(ctx.Request.Context(), identity.LicenseID, userID, *request.Active)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, licensing.ErrSeatLimitReached) {
			errorResponse.Message = "all license seats are occupied"
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		if errors.Is(err, users.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("user with id %s not found", userID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating user: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(updated))
}
