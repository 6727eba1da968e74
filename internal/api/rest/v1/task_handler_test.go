//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTaskHandler_Complete_Success(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)
	identity := newTestIdentity(users.RoleEmployee)

	taskID := uuid.New().String()
	now := time.Now()
	completed := &tasks.Task{
		ID:             taskID,
		LicenseID:      identity.LicenseID,
		ClientID:       uuid.New().String(),
		Title:          "Levere MVA-melding",
		Status:         tasks.StatusDone,
		Priority:       tasks.PriorityMedium,
		RecurrenceRule: tasks.RecurrenceNone,
		CompletedAt:    &now,
		CreatedAt:      now,
	}

	mockTaskService.
		On("Complete", mock.Anything, identity.LicenseID, taskID, identity.UserID).
		Return(completed, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks/"+taskID+"/complete", nil)

	c := newAuthedTestContext(w, req, identity)
	c.Params = gin.Params{{Key: "id", Value: taskID}}
	handler.Complete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "done")
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_Complete_ChecklistIncomplete(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)
	identity := newTestIdentity(users.RoleEmployee)

	taskID := uuid.New().String()
	mockTaskService.
		On("Complete", mock.Anything, identity.LicenseID, taskID, identity.UserID).
		Return(nil, tasks.ErrChecklistIncomplete)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks/"+taskID+"/complete", nil)

	c := newAuthedTestContext(w, req, identity)
	c.Params = gin.Params{{Key: "id", Value: taskID}}
	handler.Complete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "open checklist items")
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_Create_WithChecklist(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)
	identity := newTestIdentity(users.RoleEmployee)

	clientID := uuid.New().String()
	created := &tasks.Task{
		ID:             uuid.New().String(),
		LicenseID:      identity.LicenseID,
		ClientID:       clientID,
		Title:          "Aarsoppgjoer 2025",
		Status:         tasks.StatusOpen,
		Priority:       tasks.PriorityHigh,
		RecurrenceRule: tasks.RecurrenceYearly,
		CreatedAt:      time.Now(),
	}
	item := &tasks.ChecklistItem{
		ID:     uuid.New().String(),
		TaskID: created.ID,
		Label:  "Avstemme bank",
	}

	mockTaskService.
		On("Create", mock.Anything, identity.LicenseID, mock.AnythingOfType("*tasks.Task")).
		Return(created, nil)
	mockTaskService.
		On("AddChecklistItem", mock.Anything, identity.LicenseID, created.ID, "Avstemme bank").
		Return(item, nil)

	requestBody := `{"clientId": "` + clientID + `", "title": "Aarsoppgjoer 2025", "priority": "high", "recurrenceRule": "yearly", "checklist": ["Avstemme bank"]}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := newAuthedTestContext(w, req, identity)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Avstemme bank")
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_UpdateByID_DoneRejected(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)
	identity := newTestIdentity(users.RoleEmployee)

	taskID := uuid.New().String()
	mockTaskService.
		On("UpdateByID", mock.Anything, identity.LicenseID, mock.AnythingOfType("*tasks.Task")).
		Return(nil, errors.New("tasks are completed through the complete operation"))

	requestBody := `{"title": "Levere MVA-melding", "status": "done", "priority": "medium", "recurrenceRule": "none"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/tasks/"+taskID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := newAuthedTestContext(w, req, identity)
	c.Params = gin.Params{{Key: "id", Value: taskID}}
	handler.UpdateByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockTaskService.AssertExpectations(t)
}

func TestTaskHandler_ToggleChecklistItem_Success(t *testing.T) {
	mockTaskService := new(MockTaskService)
	handler := NewTaskHandler(mockTaskService)
	identity := newTestIdentity(users.RoleEmployee)

	taskID := uuid.New().String()
	itemID := uuid.New().String()
	now := time.Now()
	item := &tasks.ChecklistItem{
		ID:           itemID,
		TaskID:       taskID,
		Label:        "Avstemme bank",
		Done:         true,
		DoneByUserID: &identity.UserID,
		DoneAt:       &now,
	}

	mockTaskService.
		On("ToggleChecklistItem", mock.Anything, identity.LicenseID, taskID, itemID, identity.UserID, true).
		Return(item, nil)

	requestBody := `{"done": true}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/tasks/"+taskID+"/checklist/"+itemID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := newAuthedTestContext(w, req, identity)
	c.Params = gin.Params{{Key: "id", Value: taskID}, {Key: "itemId", Value: itemID}}
	handler.ToggleChecklistItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"done":true`)
	mockTaskService.AssertExpectations(t)
}
