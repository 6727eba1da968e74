//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrgNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid number (Skatteetaten)", input: "974761076", valid: true},
		{name: "valid number (Brønnøysundregistrene)", input: "974760673", valid: true},
		{name: "wrong control digit", input: "974761075", valid: false},
		{name: "too short", input: "97476107", valid: false},
		{name: "too long", input: "9747610761", valid: false},
		{name: "non-digit characters", input: "97476107a", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidOrgNumber(tt.input))
		})
	}
}
