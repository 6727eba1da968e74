package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/documents"

	"github.com/gin-gonic/gin"
)

// EngagementHandler defines the interface for handling engagement letter operations
type EngagementHandler interface {
	Render(ctx *gin.Context)
	ListVersions(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
}

type engagementHandler struct {
	engagementService documents.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagementService documents.EngagementService) EngagementHandler {
	return &engagementHandler{
		engagementService: engagementService,
	}
}

// Render handles the POST request to render a new engagement letter version
// @Summary Render an engagement letter for a client
// @Description Render a new oppdragsavtale version from the given terms, store the HTML in object storage and return the metadata.
// @Tags Engagement
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param requestBody body RenderLetterRequest true "Engagement Terms"
// @Success 201 {object} LetterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /clients/{id}/letters [post]
func (handler *engagementHandler) Render(ctx *gin.Context) {
	clientID := ctx.Param("id")

	var request RenderLetterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid letter data: %v", err.Error())
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

	terms := documents.Terms{
		ServiceScope:    request.ServiceScope,
		HourlyRateNOK:   request.HourlyRateNOK,
		PaymentDays:     request.PaymentDays,
		StartDate:       request.StartDate,
		ResponsibleName: request.ResponsibleName,
	}

	letter, err := handler.engagementService.Render(ctx.Request.Context(), identity.LicenseID, clientID, identity.UserID, terms)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, documents.ErrStoreUnconfigured) {
			errorResponse.Message = "document storage is not configured"
			ctx.JSON(http.StatusServiceUnavailable, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error rendering letter: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newLetterResponse(letter))
}

// ListVersions handles the GET request to list a client's letter versions
// @Summary List engagement letter versions for a client
// @Description Fetch the metadata of all letter versions of one client, newest first.
// @Tags Engagement
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} LetterResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id}/letters [get]
func (handler *engagementHandler) ListVersions(ctx *gin.Context) {
	clientID := ctx.Param("id")
	identity := currentIdentity(ctx)

	listed, err := handler.engagementService.ListVersions(ctx.Request.Context(), identity.LicenseID, clientID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("client with id %s not found", clientID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []LetterResponse{}
	for _, letter := range listed {
		listResponse = append(listResponse, newLetterResponse(letter))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// DownloadByID handles the GET request to download one rendered letter
// @Summary Download an engagement letter by ID
// @Description Download the rendered HTML of one letter version.
// @Tags Engagement
// @Accept json
// @Produce text/html
// @Param id path string true "Letter ID"
// @Success 200 {file} file "Rendered letter HTML"
// @Failure 404 {object} ErrorResponse
// @Router /letters/{id}/file [get]
func (handler *engagementHandler) DownloadByID(ctx *gin.Context) {
	letterID := ctx.Param("id")
	identity := currentIdentity(ctx)

	letter, content, err := handler.engagementService.Download(ctx.Request.Context(), identity.LicenseID, letterID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("letter with id %s not found", letterID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	filename := fmt.Sprintf("oppdragsavtale-v%d.html", letter.Version)
	ctx.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Writer.WriteHeader(http.StatusOK)

	if _, err := ctx.Writer.Write(content); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to write letter bytes to response with ID %s, error: %s", letterID, err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
}
