package v1

import (
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/flags"

	"github.com/gin-gonic/gin"
)

// FlagHandler defines the interface for handling feature flag operations
type FlagHandler interface {
	List(ctx *gin.Context)
	Set(ctx *gin.Context)
	Unset(ctx *gin.Context)
}

type flagHandler struct {
	flagService flags.FlagService
}

// NewFlagHandler creates a new FlagHandler
func NewFlagHandler(flagService flags.FlagService) FlagHandler {
	return &flagHandler{
		flagService: flagService,
	}
}

// List handles the GET request to list the effective flags
// @Summary List effective feature flags
// @Description Fetch global defaults merged with the license's overrides; license rows win on key.
// @Tags Flag
// @Accept json
// @Produce json
// @Success 200 {array} FlagResponse
// @Failure 400 {object} ErrorResponse
// @Router /flags [get]
func (handler *flagHandler) List(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	listed, err := handler.flagService.ListEffective(ctx.Request.Context(), identity.LicenseID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []FlagResponse{}
	for _, flag := range listed {
		listResponse = append(listResponse, newFlagResponse(flag))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Set handles the PUT request to upsert a license-scoped flag
// @Summary Set a feature flag for the license
// @Description Upsert a license-scoped override for the given key. Global defaults are managed through the CLI.
// @Tags Flag
// @Accept json
// @Produce json
// @Param key path string true "Flag Key"
// @Param requestBody body SetFlagRequest true "Flag Data"
// @Success 200 {object} FlagResponse
// @Failure 400 {object} ErrorResponse
// @Router /flags/{key} [put]
func (handler *flagHandler) Set(ctx *gin.Context) {
	key := ctx.Param("key")

	var request SetFlagRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid flag data: %v", err.Error())
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

	flag, err := handler.flagService.Set(ctx.Request.Context(), &identity.LicenseID, key, *request.Enabled, request.Description)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error setting flag %s: %v", key, err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newFlagResponse(flag))
}

// Unset handles the DELETE request to remove a license-scoped flag
// @Summary Remove a feature flag override
// @Description Remove the license's override for the given key, falling back to the global default.
// @Tags Flag
// @Accept json
// @Produce json
// @Param key path string true "Flag Key"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /flags/{key} [delete]
func (handler *flagHandler) Unset(ctx *gin.Context) {
	key := ctx.Param("key")
	identity := currentIdentity(ctx)

	if err := handler.flagService.Unset(ctx.Request.Context(), &identity.LicenseID, key); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error removing flag %s", key)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("removed flag %s", key)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
