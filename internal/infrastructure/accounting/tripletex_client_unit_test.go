//go:build unit
// +build unit

package accounting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/accounting"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripletexTestHandler(t *testing.T, sessionCount *int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token/session/:create":
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "consumer-abc", r.URL.Query().Get("consumerToken"))
			assert.Equal(t, "employee-xyz", r.URL.Query().Get("employeeToken"))
			if sessionCount != nil {
				*sessionCount++
			}
			expiration := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
			_, _ = w.Write([]byte(`{"value":{"token":"session-123","expirationDate":"` + expiration + `"}}`))
		case "/customer":
			username, password, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "0", username)
			assert.Equal(t, "session-123", password)
			_, _ = w.Write([]byte(`{"values":[
				{"id":501,"name":"Fjordkunde AS","organizationNumber":"974761076","email":"post@fjord.no"}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestTripletexClient_TestConnection(t *testing.T) {
	server := httptest.NewServer(tripletexTestHandler(t, nil))
	defer server.Close()

	client, err := NewTripletexClient(&config.TripletexSettings{
		BaseURL:       server.URL,
		ConsumerToken: "consumer-abc",
		EmployeeToken: "employee-xyz",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	err = client.TestConnection(context.Background())
	assert.NoError(t, err)
}

func TestTripletexClient_FetchClients(t *testing.T) {
	server := httptest.NewServer(tripletexTestHandler(t, nil))
	defer server.Close()

	client, err := NewTripletexClient(&config.TripletexSettings{
		BaseURL:       server.URL,
		ConsumerToken: "consumer-abc",
		EmployeeToken: "employee-xyz",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	clients, err := client.FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "501", clients[0].ExternalRef)
	assert.Equal(t, "Fjordkunde AS", clients[0].Name)
	assert.Equal(t, "974761076", clients[0].OrgNumber)
}

func TestTripletexClient_SessionReuse(t *testing.T) {
	sessionCount := 0
	server := httptest.NewServer(tripletexTestHandler(t, &sessionCount))
	defer server.Close()

	client, err := NewTripletexClient(&config.TripletexSettings{
		BaseURL:       server.URL,
		ConsumerToken: "consumer-abc",
		EmployeeToken: "employee-xyz",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = client.FetchClients(context.Background())
	require.NoError(t, err)
	_, err = client.FetchClients(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sessionCount)
}

func TestTripletexClient_FetchInvoices_NotSupported(t *testing.T) {
	client, err := NewTripletexClient(&config.TripletexSettings{
		BaseURL:       "https://tripletex.example",
		ConsumerToken: "consumer-abc",
		EmployeeToken: "employee-xyz",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = client.FetchInvoices(context.Background(), time.Now())
	assert.True(t, errors.Is(err, accounting.ErrNotSupported))
}
