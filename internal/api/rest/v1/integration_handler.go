package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/accounting"

	"github.com/gin-gonic/gin"
)

// IntegrationHandler defines the interface for handling accounting system integrations
type IntegrationHandler interface {
	Vendors(ctx *gin.Context)
	TestConnection(ctx *gin.Context)
	SyncClient(ctx *gin.Context)
}

type integrationHandler struct {
	integrationService accounting.IntegrationService
}

// NewIntegrationHandler creates a new IntegrationHandler
func NewIntegrationHandler(integrationService accounting.IntegrationService) IntegrationHandler {
	return &integrationHandler{
		integrationService: integrationService,
	}
}

// Vendors handles the GET request to list registered vendor keys
// @Summary List registered accounting vendors
// @Description Fetch the vendor keys with a configured adapter in this deployment.
// @Tags Integration
// @Accept json
// @Produce json
// @Success 200 {object} VendorsResponse
// @Router /integrations/vendors [get]
func (handler *integrationHandler) Vendors(ctx *gin.Context) {
	vendors := handler.integrationService.Vendors(ctx.Request.Context())

	ctx.JSON(http.StatusOK, VendorsResponse{Vendors: vendors})
}

// TestConnection handles the POST request to verify a client's vendor credentials
// @Summary Test the accounting connection for a client
// @Description Verify the adapter configured for the client's accounting system against the vendor API.
// @Tags Integration
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id}/integration/test [post]
func (handler *integrationHandler) TestConnection(ctx *gin.Context) {
	clientID := ctx.Param("id")
	identity := currentIdentity(ctx)

	if err := handler.integrationService.TestConnection(ctx.Request.Context(), identity.LicenseID, clientID); err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, accounting.ErrVendorNotRegistered) {
			errorResponse.Message = fmt.Sprintf("no adapter registered for client with id %s", clientID)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("connection test failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("connection verified for client with id %s", clientID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// SyncClient handles the POST request to sync a client against the vendor registry
// @Summary Sync a client against the vendor registry
// @Description Pull the vendor's customer registry and match the client by organisation number, storing the external reference on match.
// @Tags Integration
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} SyncResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id}/integration/sync [post]
func (handler *integrationHandler) SyncClient(ctx *gin.Context) {
	clientID := ctx.Param("id")
	identity := currentIdentity(ctx)

	result, err := handler.integrationService.SyncClient(ctx.Request.Context(), identity.LicenseID, clientID, identity.UserID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("sync failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	syncResponse := SyncResultResponse{
		Vendor:      result.Vendor,
		Matched:     result.Matched,
		ExternalRef: result.ExternalRef,
		ClientsSeen: result.ClientsSeen,
		SyncedAt:    result.SyncedAt,
	}

	ctx.JSON(http.StatusOK, syncResponse)
}
