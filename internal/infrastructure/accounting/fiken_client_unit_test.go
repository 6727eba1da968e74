//go:build unit
// +build unit

package accounting

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFikenClient_TestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Kari Regnskap","email":"kari@byraa.no"}`))
	}))
	defer server.Close()

	client, err := NewFikenClient(&config.FikenSettings{
		BaseURL:     server.URL,
		APIToken:    "test-token",
		CompanySlug: "testbyraa-as",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	err = client.TestConnection(context.Background())
	assert.NoError(t, err)
}

func TestFikenClient_TestConnection_BadToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewFikenClient(&config.FikenSettings{
		BaseURL:     server.URL,
		APIToken:    "bad-token",
		CompanySlug: "testbyraa-as",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	err = client.TestConnection(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestFikenClient_FetchClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/testbyraa-as/contacts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"contactId":101,"name":"Kunde En AS","organizationNumber":"974761076","email":"post@kunde1.no","customer":true},
			{"contactId":102,"name":"Leverandør AS","organizationNumber":"974760673","email":"post@lev.no","customer":false}
		]`))
	}))
	defer server.Close()

	client, err := NewFikenClient(&config.FikenSettings{
		BaseURL:     server.URL,
		APIToken:    "test-token",
		CompanySlug: "testbyraa-as",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	clients, err := client.FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "101", clients[0].ExternalRef)
	assert.Equal(t, "Kunde En AS", clients[0].Name)
	assert.Equal(t, "974761076", clients[0].OrgNumber)
}

func TestFikenClient_FetchInvoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/testbyraa-as/invoices", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("issueDateGe"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"invoiceId":9001,"issueDate":"2026-02-10","dueDate":"2026-02-24","grossInNok":12500.0,"settled":true,"customerId":101}
		]`))
	}))
	defer server.Close()

	client, err := NewFikenClient(&config.FikenSettings{
		BaseURL:     server.URL,
		APIToken:    "test-token",
		CompanySlug: "testbyraa-as",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	invoices, err := client.FetchInvoices(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "9001", invoices[0].ExternalRef)
	assert.Equal(t, "101", invoices[0].ClientRef)
	assert.Equal(t, 12500.0, invoices[0].AmountNOK)
	assert.True(t, invoices[0].Paid)
}

func TestFikenClient_FetchInvoices_Paged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/testbyraa-as/invoices", r.URL.Path)

		pageSize := fikenPageSize
		if r.URL.Query().Get("page") == "1" {
			pageSize = 50
		}
		rows := make([]string, pageSize)
		for i := range rows {
			rows[i] = fmt.Sprintf(`{"invoiceId":%d,"issueDate":"2026-02-10","dueDate":"2026-02-24","grossInNok":1000.0,"settled":false,"customerId":101}`, i)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + strings.Join(rows, ",") + "]"))
	}))
	defer server.Close()

	client, err := NewFikenClient(&config.FikenSettings{
		BaseURL:     server.URL,
		APIToken:    "test-token",
		CompanySlug: "testbyraa-as",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	invoices, err := client.FetchInvoices(context.Background(), since)
	require.NoError(t, err)
	assert.Len(t, invoices, fikenPageSize+50)
}

func TestNewFikenClient_MissingSettings(t *testing.T) {
	_, err := NewFikenClient(&config.FikenSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
