//go:build unit
// +build unit

package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLetterData() LetterData {
	return LetterData{
		FirmName:        "Fjellregnskap AS",
		FirmOrgNumber:   "974761076",
		ClientName:      "Bakeriet på Hjørnet AS",
		ClientOrgNumber: "974760673",
		Version:         2,
		Rendered:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Terms: Terms{
			ServiceScope:    []string{"Løpende bokføring", "Årsregnskap og ligningspapirer", "Lønnskjøring"},
			HourlyRateNOK:   1250,
			PaymentDays:     14,
			StartDate:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			ResponsibleName: "Kari Nordmann",
		},
	}
}

func TestRenderLetter_ContainsParties(t *testing.T) {
	html, err := RenderLetter(validLetterData())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Fjellregnskap AS")
	assert.Contains(t, out, "974761076")
	assert.Contains(t, out, "Bakeriet på Hjørnet AS")
	assert.Contains(t, out, "Versjon 2")
	assert.Contains(t, out, "10.03.2025")
}

func TestRenderLetter_ListsAllServices(t *testing.T) {
	data := validLetterData()
	html, err := RenderLetter(data)
	require.NoError(t, err)

	for _, svc := range data.Terms.ServiceScope {
		assert.Contains(t, string(html), "<li>"+svc+"</li>")
	}
}

func TestRenderLetter_TermsAppear(t *testing.T) {
	html, err := RenderLetter(validLetterData())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "kr 1250,-")
	assert.Contains(t, out, "14 dagers betalingsfrist")
	assert.Contains(t, out, "01.04.2025")
	assert.Contains(t, out, "Kari Nordmann")
}

func TestRenderLetter_InvalidTerms(t *testing.T) {
	data := validLetterData()
	data.Terms.ServiceScope = nil

	_, err := RenderLetter(data)
	assert.Error(t, err)
}
