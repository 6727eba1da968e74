package accounting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/accounting"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"
)

const fikenPageSize = 100

// fikenClient talks to the Fiken v2 API. All requests are scoped to the
// firm's company slug.
type fikenClient struct {
	baseURL     string
	apiToken    string
	companySlug string
	client      *http.Client
	logger      logger.Logger
}

type fikenContact struct {
	ContactID          int64  `json:"contactId"`
	Name               string `json:"name"`
	OrganizationNumber string `json:"organizationNumber"`
	Email              string `json:"email"`
	Customer           bool   `json:"customer"`
}

type fikenInvoice struct {
	InvoiceID  int64   `json:"invoiceId"`
	IssueDate  string  `json:"issueDate"`
	DueDate    string  `json:"dueDate"`
	GrossInNok float64 `json:"grossInNok"`
	Settled    bool    `json:"settled"`
	CustomerID int64   `json:"customerId"`
}

// NewFikenClient creates an adapter for the Fiken API.
func NewFikenClient(settings *config.FikenSettings, logger logger.Logger) (accounting.Adapter, error) {
	if settings.BaseURL == "" || settings.APIToken == "" || settings.CompanySlug == "" {
		return nil, fmt.Errorf("fiken base url, api token and company slug are required")
	}

	return &fikenClient{
		baseURL:     settings.BaseURL,
		apiToken:    settings.APIToken,
		companySlug: settings.CompanySlug,
		client:      &http.Client{Timeout: 30 * time.Second},
		logger:      logger,
	}, nil
}

// VendorName returns the registry key for Fiken.
func (c *fikenClient) VendorName() string {
	return config.VendorFiken
}

// TestConnection verifies the token by fetching the authenticated user.
func (c *fikenClient) TestConnection(ctx context.Context) error {
	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.get(ctx, "/user", nil, &user); err != nil {
		return fmt.Errorf("fiken connection test failed: %w", err)
	}
	return nil
}

// FetchClients pages through the company's contact registry and returns
// the contacts flagged as customers.
func (c *fikenClient) FetchClients(ctx context.Context) ([]accounting.ExternalClient, error) {
	var clients []accounting.ExternalClient

	for page := 0; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(fikenPageSize))

		var contacts []fikenContact
		path := fmt.Sprintf("/companies/%s/contacts", c.companySlug)
		if err := c.get(ctx, path, query, &contacts); err != nil {
			return nil, fmt.Errorf("failed to fetch fiken contacts: %w", err)
		}

		for _, contact := range contacts {
			if !contact.Customer {
				continue
			}
			clients = append(clients, accounting.ExternalClient{
				ExternalRef: strconv.FormatInt(contact.ContactID, 10),
				Name:        contact.Name,
				OrgNumber:   contact.OrganizationNumber,
				Email:       contact.Email,
			})
		}

		if len(contacts) < fikenPageSize {
			break
		}
	}

	c.logger.Info("Fetched ", len(clients), " customers from fiken")
	return clients, nil
}

// FetchInvoices pages through the invoices issued since the given instant.
func (c *fikenClient) FetchInvoices(ctx context.Context, since time.Time) ([]accounting.ExternalInvoice, error) {
	var invoices []accounting.ExternalInvoice

	for page := 0; ; page++ {
		query := url.Values{}
		query.Set("issueDateGe", since.Format("2006-01-02"))
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(fikenPageSize))

		var rawInvoices []fikenInvoice
		path := fmt.Sprintf("/companies/%s/invoices", c.companySlug)
		if err := c.get(ctx, path, query, &rawInvoices); err != nil {
			return nil, fmt.Errorf("failed to fetch fiken invoices: %w", err)
		}

		for _, raw := range rawInvoices {
			issuedAt, err := time.Parse("2006-01-02", raw.IssueDate)
			if err != nil {
				return nil, fmt.Errorf("invalid fiken issue date %q: %w", raw.IssueDate, err)
			}
			dueAt, err := time.Parse("2006-01-02", raw.DueDate)
			if err != nil {
				return nil, fmt.Errorf("invalid fiken due date %q: %w", raw.DueDate, err)
			}
			invoices = append(invoices, accounting.ExternalInvoice{
				ExternalRef: strconv.FormatInt(raw.InvoiceID, 10),
				ClientRef:   strconv.FormatInt(raw.CustomerID, 10),
				IssuedAt:    issuedAt,
				DueAt:       dueAt,
				AmountNOK:   raw.GrossInNok,
				Paid:        raw.Settled,
			})
		}

		if len(rawInvoices) < fikenPageSize {
			break
		}
	}

	return invoices, nil
}

func (c *fikenClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Failed to close response body: ", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
