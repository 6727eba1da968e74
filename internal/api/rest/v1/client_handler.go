package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ClientHandler defines the interface for handling client CRM operations
type ClientHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type clientHandler struct {
	clientService clients.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService clients.ClientService) ClientHandler {
	return &clientHandler{
		clientService: clientService,
	}
}

// Create handles the POST request to register a new client
// @Summary Register a new client
// @Description Register a new client for the authenticated license with name, organisation number and contact details.
// @Tags Client
// @Accept json
// @Produce json
// @Param requestBody body UpsertClientRequest true "Client Data"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /clients [post]
func (handler *clientHandler) Create(ctx *gin.Context) {
	var request UpsertClientRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid client data: %v", err.Error())
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

	client := &clients.Client{
		Name:              request.Name,
		OrgNumber:         request.OrgNumber,
		ContactEmail:      request.ContactEmail,
		ContactPhone:      request.ContactPhone,
		AccountingSystem:  request.AccountingSystem,
		ResponsibleUserID: request.ResponsibleUserID,
		Notes:             request.Notes,
	}

	created, err := handler.clientService.Create(ctx.Request.Context(), identity.LicenseID, client)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating client: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newClientResponse(created))
}

// List handles the GET request to list clients with optional query parameters
// @Summary List clients based on query parameters
// @Description Fetch clients filtered by name, status, accounting system and responsible user, with pagination and sorting options.
// @Tags Client
// @Accept json
// @Produce json
// @Param name query string false "Name substring"
// @Param status query string false "Client Status (active/archived)"
// @Param accountingSystem query string false "Accounting System"
// @Param responsibleUserId query string false "Responsible User ID"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Router /clients [get]
func (handler *clientHandler) List(ctx *gin.Context) {
	query := clients.NewClientQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if accountingSystem := ctx.Query("accountingSystem"); len(accountingSystem) > 0 {
		query.AccountingSystem = accountingSystem
	}

	if responsibleUserID := ctx.Query("responsibleUserId"); len(responsibleUserID) > 0 {
		query.ResponsibleUserID = responsibleUserID
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

	identity := currentIdentity(ctx)

	listed, err := handler.clientService.List(ctx.Request.Context(), identity.LicenseID, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []ClientResponse{}
	for _, client := range listed {
		listResponse = append(listResponse, newClientResponse(client))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a client by ID
// @Summary Retrieve a client by ID
// @Description Fetch one client of the authenticated license by ID.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [get]
func (handler *clientHandler) GetByID(ctx *gin.Context) {
	clientID := ctx.Param("id")
	identity := currentIdentity(ctx)

	client, err := handler.clientService.GetByID(ctx.Request.Context(), identity.LicenseID, clientID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("client with id %s not found", clientID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newClientResponse(client))
}

// UpdateByID handles the PUT request to update a client
// @Summary Update a client by ID
// @Description Update the mutable fields of one client, including contact details, status and notes.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param requestBody body UpsertClientRequest true "Client Data"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [put]
func (handler *clientHandler) UpdateByID(ctx *gin.Context) {
	clientID := ctx.Param("id")

	var request UpsertClientRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid client data: %v", err.Error())
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

	client := &clients.Client{
		ID:                clientID,
		Name:              request.Name,
		OrgNumber:         request.OrgNumber,
		ContactEmail:      request.ContactEmail,
		ContactPhone:      request.ContactPhone,
		AccountingSystem:  request.AccountingSystem,
		ResponsibleUserID: request.ResponsibleUserID,
		Status:            request.Status,
		Notes:             request.Notes,
	}

	updated, err := handler.clientService.UpdateByID(ctx.Request.Context(), identity.LicenseID, client)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, clients.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("client with id %s not found", clientID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating client: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newClientResponse(updated))
}

// DeleteByID handles the DELETE request to archive or delete a client
// @Summary Archive or delete a client by ID
// @Description Archive an active client; deleting an already archived client removes it when nothing references it.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /clients/{id} [delete]
func (handler *clientHandler) DeleteByID(ctx *gin.Context) {
	clientID := ctx.Param("id")
	identity := currentIdentity(ctx)

	if err := handler.clientService.DeleteByID(ctx.Request.Context(), identity.LicenseID, clientID); err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, clients.ErrHasReferences) {
			errorResponse.Message = fmt.Sprintf("client with id %s still has tasks or time entries", clientID)
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error deleting client with id %s", clientID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted client with id %s", clientID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
