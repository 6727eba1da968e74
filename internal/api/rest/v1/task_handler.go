package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// TaskHandler defines the interface for handling task and checklist operations
type TaskHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	Complete(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AddChecklistItem(ctx *gin.Context)
	ToggleChecklistItem(ctx *gin.Context)
	RemoveChecklistItem(ctx *gin.Context)
}

type taskHandler struct {
	taskService tasks.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService tasks.TaskService) TaskHandler {
	return &taskHandler{
		taskService: taskService,
	}
}

// Create handles the POST request to register a new task
// @Summary Register a new task
// @Description Register a new task for a client, optionally seeding its checklist with open items.
// @Tags Task
// @Accept json
// @Produce json
// @Param requestBody body CreateTaskRequest true "Task Data"
// @Success 201 {object} TaskDetailResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [post]
func (handler *taskHandler) Create(ctx *gin.Context) {
	var request CreateTaskRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid task data: %v", err.Error())
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

	task := &tasks.Task{
		ClientID:       request.ClientID,
		Title:          request.Title,
		Description:    request.Description,
		AssigneeID:     request.AssigneeID,
		Priority:       request.Priority,
		DueDate:        request.DueDate,
		RecurrenceRule: request.RecurrenceRule,
	}

	created, err := handler.taskService.Create(ctx.Request.Context(), identity.LicenseID, task)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating task: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var checklistResponse = []ChecklistItemResponse{}
	for _, label := range request.Checklist {
		item, err := handler.taskService.AddChecklistItem(ctx.Request.Context(), identity.LicenseID, created.ID, label)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("error creating checklist item: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		checklistResponse = append(checklistResponse, newChecklistItemResponse(item))
	}

	detailResponse := TaskDetailResponse{
		TaskResponse: newTaskResponse(created),
		Checklist:    checklistResponse,
	}

	ctx.JSON(http.StatusCreated, detailResponse)
}

// List handles the GET request to list tasks with optional query parameters
// @Summary List tasks based on query parameters
// @Description Fetch tasks filtered by status, assignee, client and due date window, with pagination and sorting options.
// @Tags Task
// @Accept json
// @Produce json
// @Param status query string false "Task Status"
// @Param assigneeId query string false "Assignee User ID"
// @Param clientId query string false "Client ID"
// @Param dueBefore query string false "Due before (RFC3339)"
// @Param dueAfter query string false "Due after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [get]
func (handler *taskHandler) List(ctx *gin.Context) {
	query := tasks.NewTaskQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if assigneeID := ctx.Query("assigneeId"); len(assigneeID) > 0 {
		query.AssigneeID = assigneeID
	}

	if clientID := ctx.Query("clientId"); len(clientID) > 0 {
		query.ClientID = clientID
	}

	if dueBefore := ctx.Query("dueBefore"); len(dueBefore) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dueBefore)
		if err == nil {
			query.DueBefore = parsedTime
		}
	}

	if dueAfter := ctx.Query("dueAfter"); len(dueAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dueAfter)
		if err == nil {
			query.DueAfter = parsedTime
		}
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

	listed, err := handler.taskService.List(ctx.Request.Context(), identity.LicenseID, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []TaskResponse{}
	for _, task := range listed {
		listResponse = append(listResponse, newTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a task with its checklist
// @Summary Retrieve a task by ID
// @Description Fetch one task of the authenticated license by ID, including its checklist items in order.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} TaskDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [get]
func (handler *taskHandler) GetByID(ctx *gin.Context) {
	taskID := ctx.Param("id")
	identity := currentIdentity(ctx)

	task, checklist, err := handler.taskService.GetByID(ctx.Request.Context(), identity.LicenseID, taskID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("task with id %s not found", taskID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var checklistResponse = []ChecklistItemResponse{}
	for _, item := range checklist {
		checklistResponse = append(checklistResponse, newChecklistItemResponse(item))
	}

	detailResponse := TaskDetailResponse{
		TaskResponse: newTaskResponse(task),
		Checklist:    checklistResponse,
	}

	ctx.JSON(http.StatusOK, detailResponse)
}

// UpdateByID handles the PUT request to update a task
// @Summary Update a task by ID
// @Description Update the mutable fields of one task. Setting status to done is rejected; completion goes through the complete endpoint.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param requestBody body UpdateTaskRequest true "Task Data"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [put]
func (handler *taskHandler) UpdateByID(ctx *gin.Context) {
	taskID := ctx.Param("id")

	var request UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid task data: %v", err.Error())
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

	task := &tasks.Task{
		ID:             taskID,
		Title:          request.Title,
		Description:    request.Description,
		AssigneeID:     request.AssigneeID,
		Status:         request.Status,
		Priority:       request.Priority,
		DueDate:        request.DueDate,
		RecurrenceRule: request.RecurrenceRule,
	}

	updated, err := handler.taskService.UpdateByID(ctx.Request.Context(), identity.LicenseID, task)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, tasks.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("task with id %s not found", taskID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error updating task: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(updated))
}

// Complete handles the POST request to mark a task done
// @Summary Complete a task by ID
// @Description Mark a task done. Fails while checklist items remain open; a recurring task spawns its next occurrence.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tasks/{id}/complete [post]
func (handler *taskHandler) Complete(ctx *gin.Context) {
	taskID := ctx.Param("id")
	identity := currentIdentity(ctx)

	completed, err := handler.taskService.Complete(ctx.Request.Context(), identity.LicenseID, taskID, identity.UserID)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, tasks.ErrChecklistIncomplete) {
			errorResponse.Message = fmt.Sprintf("task with id %s has open checklist items", taskID)
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		if errors.Is(err, tasks.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("task with id %s not found", taskID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error completing task: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(completed))
}

// DeleteByID handles the DELETE request to delete a task
// @Summary Delete a task by ID
// @Description Delete a task and its checklist items.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [delete]
func (handler *taskHandler) DeleteByID(ctx *gin.Context) {
	taskID := ctx.Param("id")
	identity := currentIdentity(ctx)

	if err := handler.taskService.DeleteByID(ctx.Request.Context(), identity.LicenseID, taskID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting task with id %s", taskID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted task with id %s", taskID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// AddChecklistItem handles the POST request to append a checklist item
// @Summary Add a checklist item to a task
// @Description Append one open checklist item to a task that is not done or cancelled.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param requestBody body AddChecklistItemRequest true "Checklist Item Data"
// @Success 201 {object} ChecklistItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/checklist [post]
func (handler *taskHandler) AddChecklistItem(ctx *gin.Context) {
	taskID := ctx.Param("id")

	var request AddChecklistItemRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid checklist item data: %v", err.Error())
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

	item, err := handler.taskService.AddChecklistItem(ctx.Request.Context(), identity.LicenseID, taskID, request.Label)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, tasks.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("task with id %s not found", taskID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error creating checklist item: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newChecklistItemResponse(item))
}

// ToggleChecklistItem handles the PATCH request to set a checklist item's done state
// @Summary Toggle a checklist item
// @Description Set a checklist item's done state, recording who checked it and when.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param itemId path string true "Checklist Item ID"
// @Param requestBody body ToggleChecklistItemRequest true "Done State"
// @Success 200 {object} ChecklistItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/checklist/{itemId} [patch]
func (handler *taskHandler) ToggleChecklistItem(ctx *gin.Context) {
	taskID := ctx.Param("id")
	itemID := ctx.Param("itemId")

	var request ToggleChecklistItemRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid checklist item data: %v", err.Error())
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

	item, err := handler.taskService.ToggleChecklistItem(ctx.Request.Context(), identity.LicenseID, taskID, itemID, identity.UserID, *request.Done)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("checklist item with id %s not found", itemID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newChecklistItemResponse(item))
}

// RemoveChecklistItem handles the DELETE request to remove a checklist item
// @Summary Remove a checklist item
// @Description Remove one checklist item from a task.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param itemId path string true "Checklist Item ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/checklist/{itemId} [delete]
func (handler *taskHandler) RemoveChecklistItem(ctx *gin.Context) {
	taskID := ctx.Param("id")
	itemID := ctx.Param("itemId")
	identity := currentIdentity(ctx)

	if err := handler.taskService.RemoveChecklistItem(ctx.Request.Context(), identity.LicenseID, taskID, itemID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting checklist item with id %s", itemID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted checklist item with id %s", itemID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
