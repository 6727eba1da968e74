package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"

	"github.com/gin-gonic/gin"
)

// AmlHandler defines the interface for handling AML/KYC compliance operations
type AmlHandler interface {
	GetByClientID(ctx *gin.Context)
	Assess(ctx *gin.Context)
	ListByLevel(ctx *gin.Context)
	ListOverdue(ctx *gin.Context)
}

type amlHandler struct {
	amlService aml.AmlService
}

// NewAmlHandler creates a new AmlHandler
func NewAmlHandler(amlService aml.AmlService) AmlHandler {
	return &amlHandler{
		amlService: amlService,
	}
}

// GetByClientID handles the GET request to retrieve a client's AML status
// @Summary Retrieve the AML status of a client
// @Description Fetch the current KYC/AML assessment of one client, including score, level and next review deadline.
// @Tags Aml
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} AmlStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id}/aml [get]
func (handler *amlHandler) GetByClientID(ctx *gin.Context) {
	clientID := ctx.Param("id")
	identity := currentIdentity(ctx)

	status, err := handler.amlService.GetByClientID(ctx.Request.Context(), identity.LicenseID, clientID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("no aml status for client with id %s", clientID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newAmlStatusResponse(status))
}

// Assess handles the POST request to record an AML review
// @Summary Record an AML review for a client
// @Description Record the four factor scores and confirmations, recomputing score, level and next review deadline.
// @Tags Aml
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param requestBody body AssessmentRequest true "Assessment Data"
// @Success 200 {object} AmlStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id}/aml [post]
func (handler *amlHandler) Assess(ctx *gin.Context) {
	clientID := ctx.Param("id")

	var request AssessmentRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid assessment data: %v", err.Error())
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

	assessment := aml.Assessment{
		GeographyRisk:    request.GeographyRisk,
		IndustryRisk:     request.IndustryRisk,
		OwnershipRisk:    request.OwnershipRisk,
		TransactionRisk:  request.TransactionRisk,
		PepConfirmed:     request.PepConfirmed,
		IdentityVerified: request.IdentityVerified,
	}

	status, err := handler.amlService.Assess(ctx.Request.Context(), identity.LicenseID, clientID, identity.UserID, assessment)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, aml.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("no aml status for client with id %s", clientID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error recording assessment: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newAmlStatusResponse(status))
}

// ListByLevel handles the GET request to list AML statuses at one risk level
// @Summary List AML statuses by risk level
// @Description Fetch all statuses of the license at the given risk level.
// @Tags Aml
// @Accept json
// @Produce json
// @Param level query string true "Risk Level (low/medium/high)"
// @Success 200 {array} AmlStatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /aml [get]
func (handler *amlHandler) ListByLevel(ctx *gin.Context) {
	level := ctx.Query("level")
	identity := currentIdentity(ctx)

	listed, err := handler.amlService.ListByLevel(ctx.Request.Context(), identity.LicenseID, level)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AmlStatusResponse{}
	for _, status := range listed {
		listResponse = append(listResponse, newAmlStatusResponse(status))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListOverdue handles the GET request to list overdue AML reviews
// @Summary List overdue AML reviews
// @Description Fetch all statuses of the license whose next review deadline has passed.
// @Tags Aml
// @Accept json
// @Produce json
// @Success 200 {array} AmlStatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /aml/overdue [get]
func (handler *amlHandler) ListOverdue(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	listed, err := handler.amlService.ListOverdue(ctx.Request.Context(), identity.LicenseID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AmlStatusResponse{}
	for _, status := range listed {
		listResponse = append(listResponse, newAmlStatusResponse(status))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
