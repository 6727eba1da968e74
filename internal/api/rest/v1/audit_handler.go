package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// AuditHandler defines the interface for reading the audit trail
type AuditHandler interface {
	List(ctx *gin.Context)
}

type auditHandler struct {
	auditService audit.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandler{
		auditService: auditService,
	}
}

// List handles the GET request to list audit entries with optional query parameters
// @Summary List audit entries based on query parameters
// @Description Fetch the license's audit trail filtered by entity, action, user and time window, newest first.
// @Tags Audit
// @Accept json
// @Produce json
// @Param entity query string false "Entity name"
// @Param action query string false "Action"
// @Param userId query string false "Acting User ID"
// @Param from query string false "From (RFC3339)"
// @Param to query string false "To (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} AuditEntryResponse
// @Failure 400 {object} ErrorResponse
// @Router /audit [get]
func (handler *auditHandler) List(ctx *gin.Context) {
	query := audit.NewEntryQuery()

	if entity := ctx.Query("entity"); len(entity) > 0 {
		query.Entity = entity
	}

	if action := ctx.Query("action"); len(action) > 0 {
		query.Action = action
	}

	if userID := ctx.Query("userId"); len(userID) > 0 {
		query.UserID = userID
	}

	if from := ctx.Query("from"); len(from) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, from)
		if err == nil {
			query.From = parsedTime
		}
	}

	if to := ctx.Query("to"); len(to) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, to)
		if err == nil {
			query.To = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	identity := currentIdentity(ctx)

	listed, err := handler.auditService.List(ctx.Request.Context(), identity.LicenseID, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AuditEntryResponse{}
	for _, entry := range listed {
		listResponse = append(listResponse, newAuditEntryResponse(entry))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
