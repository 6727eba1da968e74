package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// TimeEntryHandler defines the interface for handling time registration operations
type TimeEntryHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Totals(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type timeEntryHandler struct {
	timeEntryService timetracking.TimeEntryService
}

// NewTimeEntryHandler creates a new TimeEntryHandler
func NewTimeEntryHandler(timeEntryService timetracking.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandler{
		timeEntryService: timeEntryService,
	}
}

func timeEntryQueryFromContext(ctx *gin.Context) *timetracking.TimeEntryQuery {
	query := timetracking.NewTimeEntryQuery()

	if userID := ctx.Query("userId"); len(userID) > 0 {
		query.UserID = userID
	}

	if clientID := ctx.Query("clientId"); len(clientID) > 0 {
		query.ClientID = clientID
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

	if billable := ctx.Query("billable"); len(billable) > 0 {
		value := billable == "true"
		query.Billable = &value
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	return query
}

// Create handles the POST request to register worked time
// @Summary Register worked time
// @Description Register minutes worked by the authenticated user against a client, optionally linked to a task. The date must not be in the future.
// @Tags TimeEntry
// @Accept json
// @Produce json
// @Param requestBody body TimeEntryRequest true "Time Entry Data"
// @Success 201 {object} TimeEntryResponse
// @Failure 400 {object} ErrorResponse
// @Router /time-entries [post]
func (handler *timeEntryHandler) Create(ctx *gin.Context) {
	var request TimeEntryRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid time entry data: %v", err.Error())
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

	entry := &timetracking.TimeEntry{
		UserID:      identity.UserID,
		ClientID:    request.ClientID,
		TaskID:      request.TaskID,
		Date:        request.Date,
		Minutes:     request.Minutes,
		Billable:    request.Billable,
		Description: request.Description,
	}

	created, err := handler.timeEntryService.Create(ctx.Request.Context(), identity.LicenseID, entry)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating time entry: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newTimeEntryResponse(created))
}

// List handles the GET request to list time entries with optional query parameters
// @Summary List time entries based on query parameters
// @Description Fetch time entries filtered by user, client, date window and billable state, with pagination and sorting options.
// @Tags TimeEntry
// @Accept json
// @Produce json
// @Param userId query string false "User ID"
// @Param clientId query string false "Client ID"
// @Param from query string false "From date (RFC3339)"
// @Param to query string false "To date (RFC3339)"
// @Param billable query bool false "Billable only"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} TimeEntryResponse
// @Failure 400 {object} ErrorResponse
// @Router /time-entries [get]
func (handler *timeEntryHandler) List(ctx *gin.Context) {
	query := timeEntryQueryFromContext(ctx)
	identity := currentIdentity(ctx)

	listed, err := handler.timeEntryService.List(ctx.Request.Context(), identity.LicenseID, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []TimeEntryResponse{}
	for _, entry := range listed {
		listResponse = append(listResponse, newTimeEntryResponse(entry))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Totals handles the GET request to aggregate minutes over a filter
// @Summary Aggregate minutes over time entries
// @Description Sum total and billable minutes over the entries matching the same filters as the list endpoint.
// @Tags TimeEntry
// @Accept json
// @Produce json
// @Param userId query string false "User ID"
// @Param clientId query string false "Client ID"
// @Param from query string false "From date (RFC3339)"
// @Param to query string false "To date (RFC3339)"
// @Param billable query bool false "Billable only"
// @Success 200 {object} TotalsResponse
// @Failure 400 {object} ErrorResponse
// @Router /time-entries/totals [get]
func (handler *timeEntryHandler) Totals(ctx *gin.Context) {
	query := timeEntryQueryFromContext(ctx)
	identity := currentIdentity(ctx)

	totals, err := handler.timeEntryService.TotalsForQuery(ctx.Request.Context(), identity.LicenseID, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("totals query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	totalsResponse := TotalsResponse{
		TotalMinutes:    totals.TotalMinutes,
		BillableMinutes: totals.BillableMinutes,
		EntryCount:      totals.EntryCount,
		BillableShare:   totals.BillableShare(),
	}

	ctx.JSON(http.StatusOK, totalsResponse)
}

// GetByID handles the GET request to retrieve a time entry by ID
// @Summary Retrieve a time entry by ID
// @Description Fetch one time entry of the authenticated license by ID.
// @Tags TimeEntry
// @Accept json
// @Produce json
// @Param id path string true "Time Entry ID"
// @Success 200 {object} TimeEntryResponse
// @Failure 404 {object} ErrorResponse
// @Router /time-entries/{id} [get]
func (handler *timeEntryHandler) GetByID(ctx *gin.Context) {
	entryID := ctx.Param("id")
	identity := currentIdentity(ctx)

	entry, err := handler.timeEntryService.GetByID(ctx.Request.Context(), identity.LicenseID, entryID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("time entry with id %s not found", entryID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newTimeEntryResponse(entry))
}

// UpdateByID handles the PUT request to update a time entry
// @Summary Update a time entry by ID
// @Description Update one time entry. Only the entry's owner or an admin may update it.
// @Tags TimeEntry
// @Accept json
// @Produce json
// @Param id path string true "Time Entry ID"
// @Param requestBody body TimeEntryRequest true "Time Entry Data"
// @Success 200 {object} TimeEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /time-entries/{id} [put]
func (handler *timeEntryHandler) UpdateByID(ctx *gin.Context) {
	entryID := ctx.Param("id")

	var request TimeEntryRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid time entry data: %v", err.Error())
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

	entry := &timetracking.TimeEntry{
		ID:          entryID,
		ClientID:    request.ClientID,
		TaskID:      request.TaskID,
		Date:        request.Date,
		Minutes:     request.Minutes,
		Billable:    request.Billable,
		Description: request.Description,
	}

	updated, err := handler.timeEntryService.UpdateByID(ctx.Request.Context(), identity.LicenseID, entry)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, timetracking.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("time entry with id %s not found", entryID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating time entry: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newTimeEntryResponse(updated))
}

// DeleteByID handles the DELETE request to delete a time entry
// @Summary Delete a time entry by ID
// @Description Delete one time entry. Only the entry's owner or an admin may delete it.
// @Tags TimeEntry
// @Accept json
// @Produce json
// @Param id path string true "Time Entry ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /time-entries/{id} [delete]
func (handler *timeEntryHandler) DeleteByID(ctx *gin.Context) {
	entryID := ctx.Param("id")
	identity := currentIdentity(ctx)

	if err := handler.timeEntryService.DeleteByID(ctx.Request.Context(), identity.LicenseID, entryID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting time entry with id %s", entryID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted time entry with id %s", entryID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
