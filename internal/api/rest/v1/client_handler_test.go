//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestIdentity(role string) *users.Identity {
	return &users.Identity{
		UserID:    uuid.New().String(),
		LicenseID: uuid.New().String(),
		Email:     "ansatt@byraa.no",
		Role:      role,
	}
}

func newAuthedTestContext(w *httptest.ResponseRecorder, req *http.Request, identity *users.Identity) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(identityKey, identity)
	return c
}

func TestClientHandler_Create_Success(t *testing.T) {
	mockClientService := new(MockClientService)
	handler := NewClientHandler(mockClientService)
	identity := newTestIdentity(users.RoleEmployee)

	created := &clients.Client{
		ID:               uuid.New().String(),
		LicenseID:        identity.LicenseID,
		Name:             "Fjellheim Bygg AS",
		OrgNumber:        "974761076",
		AccountingSystem: clients.SystemNone,
		Status:           clients.StatusActive,
		CreatedAt:        time.Now(),
	}

	mockClientService.
		On("Create", mock.Anything, identity.LicenseID, mock.AnythingOfType("*clients.Client")).
		Return(created, nil)

	requestBody := `{"name": "Fjellheim Bygg AS", "orgNumber": "974761076"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/clients", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := newAuthedTestContext(w, req, identity)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Fjellheim Bygg AS")
	mockClientService.AssertExpectations(t)
}

func TestClientHandler_Create_InvalidOrgNumber(t *testing.T) {
	mockClientService := new(MockClientService)
	handler := NewClientHandler(mockClientService)
	identity := newTestIdentity(users.RoleEmployee)

	requestBody := `{"name": "Fjellheim Bygg AS", "orgNumber": "123"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/clients", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := newAuthedTestContext(w, req, identity)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockClientService.AssertNotCalled(t, "Create")
}

func TestClientHandler_GetByID_NotFound(t *testing.T) {
	mockClientService := new(MockClientService)
	handler := NewClientHandler(mockClientService)
	identity := newTestIdentity(users.RoleEmployee)

	clientID := uuid.New().String()
	mockClientService.
		On("GetByID", mock.Anything, identity.LicenseID, clientID).
		Return(nil, clients.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/clients/"+clientID, nil)

	c := newAuthedTestContext(w, req, identity)
	c.Params = gin.Params{{Key: "id", Value: clientID}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockClientService.AssertExpectations(t)
}

func TestClientHandler_List_Success(t *testing.T) {
	mockClientService := new(MockClientService)
	handler := NewClientHandler(mockClientService)
	identity := newTestIdentity(users.RoleEmployee)

	listed := []*clients.Client{
		{
			ID:               uuid.New().String(),
			LicenseID:        identity.LicenseID,
			Name:             "Nordkyst Fiskeri AS",
			OrgNumber:        "974760673",
			AccountingSystem: clients.SystemFiken,
			Status:           clients.StatusActive,
			CreatedAt:        time.Now(),
		},
	}

	mockClientService.
		On("List", mock.Anything, identity.LicenseID, mock.AnythingOfType("*clients.ClientQuery")).
		Return(listed, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/clients?status=active", nil)

	c := newAuthedTestContext(w, req, identity)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nordkyst Fiskeri AS")
	mockClientService.AssertExpectations(t)
}

func TestClientHandler_DeleteByID_HasReferences(t *testing.T) {
	mockClientService := new(MockClientService)
	handler := NewClientHandler(mockClientService)
	identity := newTestIdentity(users.RoleEmployee)

	clientID := uuid.New().String()
	mockClientService.
		On("DeleteByID", mock.Anything, identity.LicenseID, clientID).
		Return(clients.ErrHasReferences)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/clients/"+clientID, nil)

	c := newAuthedTestContext(w, req, identity)
	c.Params = gin.Params{{Key: "id", Value: clientID}}
	handler.DeleteByID(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockClientService.AssertExpectations(t)
}
