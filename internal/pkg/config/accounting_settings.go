package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Accounting vendor constants
const (
	VendorFiken     = "fiken"
	VendorTripletex = "tripletex"
)

// FikenSettings holds credentials for the Fiken API. The company slug scopes
// every request to the firm's own Fiken company.
type FikenSettings struct {
	BaseURL     string `mapstructure:"base_url"`
	APIToken    string `mapstructure:"api_token"`
	CompanySlug string `mapstructure:"company_slug"`
}

// TripletexSettings holds credentials for the Tripletex API. Tripletex
// exchanges consumer+employee tokens for a session token on each sync.
type TripletexSettings struct {
	BaseURL       string `mapstructure:"base_url"`
	ConsumerToken string `mapstructure:"consumer_token"`
	EmployeeToken string `mapstructure:"employee_token"`
}

// AccountingSettings holds per-vendor integration credentials. A vendor with
// empty credentials is simply not registered at startup.
type AccountingSettings struct {
	Fiken     FikenSettings     `mapstructure:"fiken"`
	Tripletex TripletexSettings `mapstructure:"tripletex"`
}

// Validate checks that configured vendors have complete credentials
func (s *AccountingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AccountingSettings: %w", err)
	}

	if s.Fiken.APIToken != "" && (s.Fiken.BaseURL == "" || s.Fiken.CompanySlug == "") {
		return fmt.Errorf("fiken base_url and company_slug are required when api_token is set")
	}
	if s.Tripletex.ConsumerToken != "" && (s.Tripletex.EmployeeToken == "" || s.Tripletex.BaseURL == "") {
		return fmt.Errorf("tripletex employee_token and base_url are required when consumer_token is set")
	}

	return nil
}
