//go:build unit
// +build unit

package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffective_ScopedOverridesGlobal(t *testing.T) {
	licenseID := "lic-1"
	global := []*FeatureFlag{
		{Key: "ai_assistant", Enabled: false},
		{Key: "fiken_sync", Enabled: true},
	}
	scoped := []*FeatureFlag{
		{Key: "ai_assistant", Enabled: true, LicenseID: &licenseID},
		{Key: "beta_dashboard", Enabled: true, LicenseID: &licenseID},
	}

	merged := Effective(global, scoped)

	assert.Len(t, merged, 3)
	byKey := map[string]*FeatureFlag{}
	for _, f := range merged {
		byKey[f.Key] = f
	}
	assert.True(t, byKey["ai_assistant"].Enabled)
	assert.NotNil(t, byKey["ai_assistant"].LicenseID)
	assert.True(t, byKey["fiken_sync"].Enabled)
	assert.True(t, byKey["beta_dashboard"].Enabled)
}

func TestEffective_EmptyInputs(t *testing.T) {
	assert.Empty(t, Effective(nil, nil))
}
