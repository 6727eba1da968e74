//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpsertClientRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   UpsertClientRequest
		shouldErr bool
	}{
		{"Valid minimal", UpsertClientRequest{Name: "Fjellheim Bygg AS", OrgNumber: "974761076"}, false},
		{"Valid with system", UpsertClientRequest{Name: "Fjellheim Bygg AS", OrgNumber: "974761076", AccountingSystem: "fiken"}, false},
		{"Missing name", UpsertClientRequest{OrgNumber: "974761076"}, true},
		{"Short org number", UpsertClientRequest{Name: "Fjellheim Bygg AS", OrgNumber: "123"}, true},
		{"Non-numeric org number", UpsertClientRequest{Name: "Fjellheim Bygg AS", OrgNumber: "97476107a"}, true},
		{"Unknown system", UpsertClientRequest{Name: "Fjellheim Bygg AS", OrgNumber: "974761076", AccountingSystem: "visma"}, true},
		{"Bad email", UpsertClientRequest{Name: "Fjellheim Bygg AS", OrgNumber: "974761076", ContactEmail: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	clientID := "3f6bdc1a-5b0a-4f3e-9a38-6d8f1f0d8a21"

	tests := []struct {
		name      string
		request   CreateTaskRequest
		shouldErr bool
	}{
		{"Valid minimal", CreateTaskRequest{ClientID: clientID, Title: "Levere MVA-melding"}, false},
		{"Valid recurring", CreateTaskRequest{ClientID: clientID, Title: "Levere MVA-melding", RecurrenceRule: "quarterly"}, false},
		{"Valid with checklist", CreateTaskRequest{ClientID: clientID, Title: "Levere MVA-melding", Checklist: []string{"Avstemme bank"}}, false},
		{"Missing client", CreateTaskRequest{Title: "Levere MVA-melding"}, true},
		{"Missing title", CreateTaskRequest{ClientID: clientID}, true},
		{"Unknown priority", CreateTaskRequest{ClientID: clientID, Title: "Levere MVA-melding", Priority: "urgent"}, true},
		{"Unknown recurrence", CreateTaskRequest{ClientID: clientID, Title: "Levere MVA-melding", RecurrenceRule: "weekly"}, true},
		{"Empty checklist label", CreateTaskRequest{ClientID: clientID, Title: "Levere MVA-melding", Checklist: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestAssessmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AssessmentRequest
		shouldErr bool
	}{
		{"Valid all low", AssessmentRequest{GeographyRisk: 1, IndustryRisk: 1, OwnershipRisk: 1, TransactionRisk: 1}, false},
		{"Valid all high", AssessmentRequest{GeographyRisk: 5, IndustryRisk: 5, OwnershipRisk: 5, TransactionRisk: 5, PepConfirmed: true}, false},
		{"Score zero", AssessmentRequest{GeographyRisk: 0, IndustryRisk: 1, OwnershipRisk: 1, TransactionRisk: 1}, true},
		{"Score above range", AssessmentRequest{GeographyRisk: 6, IndustryRisk: 1, OwnershipRisk: 1, TransactionRisk: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestRenderLetterRequest_Validate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		request   RenderLetterRequest
		shouldErr bool
	}{
		{"Valid", RenderLetterRequest{ServiceScope: []string{"Loennskjoering"}, HourlyRateNOK: 1250, PaymentDays: 14, StartDate: start, ResponsibleName: "Kari Nordmann"}, false},
		{"Empty scope", RenderLetterRequest{ServiceScope: []string{}, HourlyRateNOK: 1250, PaymentDays: 14, StartDate: start, ResponsibleName: "Kari Nordmann"}, true},
		{"Zero rate", RenderLetterRequest{ServiceScope: []string{"Loennskjoering"}, PaymentDays: 14, StartDate: start, ResponsibleName: "Kari Nordmann"}, true},
		{"Payment days too long", RenderLetterRequest{ServiceScope: []string{"Loennskjoering"}, HourlyRateNOK: 1250, PaymentDays: 120, StartDate: start, ResponsibleName: "Kari Nordmann"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
