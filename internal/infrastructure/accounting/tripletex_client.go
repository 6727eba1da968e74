package accounting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/accounting"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"
)

const tripletexPageSize = 1000

// tripletexClient talks to the Tripletex v2 API. Tripletex authenticates
// with a short-lived session token exchanged from consumer+employee tokens,
// so the session is created lazily and refreshed when it expires.
type tripletexClient struct {
	baseURL       string
	consumerToken string
	employeeToken string
	client        *http.Client
	logger        logger.Logger

	mu             sync.Mutex
	sessionToken   string
	sessionExpires time.Time
}

type tripletexCustomer struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	OrganizationNumber string `json:"organizationNumber"`
	Email              string `json:"email"`
}

// NewTripletexClient creates an adapter for the Tripletex API.
func NewTripletexClient(settings *config.TripletexSettings, logger logger.Logger) (accounting.Adapter, error) {
	if settings.BaseURL == "" || settings.ConsumerToken == "" || settings.EmployeeToken == "" {
		return nil, fmt.Errorf("tripletex base url, consumer token and employee token are required")
	}

	return &tripletexClient{
		baseURL:       settings.BaseURL,
		consumerToken: settings.ConsumerToken,
		employeeToken: settings.EmployeeToken,
		client:        &http.Client{Timeout: 30 * time.Second},
		logger:        logger,
	}, nil
}

// VendorName returns the registry key for Tripletex.
func (c *tripletexClient) VendorName() string {
	return config.VendorTripletex
}

// TestConnection verifies the tokens by creating a session.
func (c *tripletexClient) TestConnection(ctx context.Context) error {
	if _, err := c.session(ctx); err != nil {
		return fmt.Errorf("tripletex connection test failed: %w", err)
	}
	return nil
}

// FetchClients pages through the customer registry.
func (c *tripletexClient) FetchClients(ctx context.Context) ([]accounting.ExternalClient, error) {
	token, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	var clients []accounting.ExternalClient

	for from := 0; ; from += tripletexPageSize {
		query := url.Values{}
		query.Set("from", strconv.Itoa(from))
		query.Set("count", strconv.Itoa(tripletexPageSize))
		query.Set("fields", "id,name,organizationNumber,email")

		var page struct {
			Values []tripletexCustomer `json:"values"`
		}
		if err := c.get(ctx, token, "/customer", query, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch tripletex customers: %w", err)
		}

		for _, customer := range page.Values {
			clients = append(clients, accounting.ExternalClient{
				ExternalRef: strconv.FormatInt(customer.ID, 10),
				Name:        customer.Name,
				OrgNumber:   customer.OrganizationNumber,
				Email:       customer.Email,
			})
		}

		if len(page.Values) < tripletexPageSize {
			break
		}
	}

	c.logger.Info("Fetched ", len(clients), " customers from tripletex")
	return clients, nil
}

// FetchInvoices is not wired up for Tripletex.
func (c *tripletexClient) FetchInvoices(ctx context.Context, since time.Time) ([]accounting.ExternalInvoice, error) {
	return nil, accounting.ErrNotSupported
}

// session returns a valid session token, exchanging the consumer and employee
// tokens when no session exists or the current one is about to expire.
func (c *tripletexClient) session(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionToken != "" && time.Now().Add(time.Hour).Before(c.sessionExpires) {
		return c.sessionToken, nil
	}

	expirationDate := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	query := url.Values{}
	query.Set("consumerToken", c.consumerToken)
	query.Set("employeeToken", c.employeeToken)
	query.Set("expirationDate", expirationDate)

	requestURL := c.baseURL + "/token/session/:create?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create session request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("session request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Failed to close response body: ", err)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d creating tripletex session", resp.StatusCode)
	}

	var session struct {
		Value struct {
			Token          string `json:"token"`
			ExpirationDate string `json:"expirationDate"`
		} `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if session.Value.Token == "" {
		return "", fmt.Errorf("tripletex session response has no token")
	}

	expires, err := time.Parse("2006-01-02", session.Value.ExpirationDate)
	if err != nil {
		expires = time.Now().AddDate(0, 0, 1)
	}

	c.sessionToken = session.Value.Token
	c.sessionExpires = expires
	return c.sessionToken, nil
}

func (c *tripletexClient) get(ctx context.Context, sessionToken, path string, query url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Tripletex uses basic auth with companyId 0 and the session token
	req.SetBasicAuth("0", sessionToken)
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
