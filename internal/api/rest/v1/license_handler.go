package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"

	"github.com/gin-gonic/gin"
)

// LicenseHandler defines the interface for handling license and billing operations
type LicenseHandler interface {
	Get(ctx *gin.Context)
	SeatUsage(ctx *gin.Context)
	UpdatePlan(ctx *gin.Context)
	SetStatus(ctx *gin.Context)
}

type licenseHandler struct {
	licenseService licensing.LicenseService
}

// NewLicenseHandler creates a new LicenseHandler
func NewLicenseHandler(licenseService licensing.LicenseService) LicenseHandler {
	return &licenseHandler{
		licenseService: licenseService,
	}
}

// Get handles the GET request to retrieve the caller's license
// @Summary Retrieve the authenticated license
// @Description Fetch the license the caller belongs to, including plan, seat limit and renewal date.
// @Tags License
// @Accept json
// @Produce json
// @Success 200 {object} LicenseResponse
// @Failure 404 {object} ErrorResponse
// @Router /license [get]
func (handler *licenseHandler) Get(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	license, err := handler.licenseService.GetByID(ctx.Request.Context(), identity.LicenseID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "license not found"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newLicenseResponse(license))
}

// SeatUsage handles the GET request to report seat occupancy
// @Summary Report seat occupancy
// @Description Report how many of the license's seats are held by active users.
// @Tags License
// @Accept json
// @Produce json
// @Success 200 {object} SeatUsageResponse
// @Failure 404 {object} ErrorResponse
// @Router /license/seats [get]
func (handler *licenseHandler) SeatUsage(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	usage, err := handler.licenseService.SeatUsage(ctx.Request.Context(), identity.LicenseID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "license not found"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	usageResponse := SeatUsageResponse{
		SeatLimit:   usage.SeatLimit,
		ActiveUsers: usage.ActiveUsers,
		UsedPercent: usage.UsedPercent,
	}

	ctx.JSON(http.StatusOK, usageResponse)
}

// UpdatePlan handles the PUT request to change plan and seat limit
// @Summary Change the license plan
// @Description Change plan and seat limit. Lowering the seat limit below the active user count is rejected.
// @Tags License
// @Accept json
// @Produce json
// @Param requestBody body UpdatePlanRequest true "Plan Data"
// @Success 200 {object} LicenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /license/plan [put]
func (handler *licenseHandler) UpdatePlan(ctx *gin.Context) {
	var request UpdatePlanRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid plan data: %v", err.Error())
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

	updated, err := handler.licenseService.UpdatePlan(ctx.Request.Context(), identity.LicenseID, request.Plan, request.SeatLimit)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, licensing.ErrSeatLimitReached) {
			errorResponse.Message = "seat limit is below the current active user count"
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating plan: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newLicenseResponse(updated))
}

// SetStatus handles the PUT request to change the license status
// @Summary Change the license status
// @Description Suspend, reactivate or cancel the license.
// @Tags License
// @Accept json
// @Produce json
// @Param requestBody body SetLicenseStatusRequest true "Status Data"
// @Success 200 {object} LicenseResponse
// @Failure 400 {object} ErrorResponse
// @Router /license/status [put]
func (handler *licenseHandler) SetStatus(ctx *gin.Context) {
	var request SetLicenseStatusRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid status data: %v", err.Error())
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

	updated, err := handler.licenseService.SetStatus(ctx.Request.Context(), identity.LicenseID, request.Status)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating status: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newLicenseResponse(updated))
}
