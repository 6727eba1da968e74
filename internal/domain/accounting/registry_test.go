//go:build unit
// +build unit

package accounting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	name string
}

func (a *fakeAdapter) VendorName() string                     { return a.name }
func (a *fakeAdapter) TestConnection(_ context.Context) error { return nil }
func (a *fakeAdapter) FetchClients(_ context.Context) ([]ExternalClient, error) {
	return nil, nil
}
func (a *fakeAdapter) FetchInvoices(_ context.Context, _ time.Time) ([]ExternalInvoice, error) {
	return nil, ErrNotSupported
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{name: "fiken"}))
	require.NoError(t, r.Register(&fakeAdapter{name: "tripletex"}))

	adapter, err := r.Resolve("fiken")
	require.NoError(t, err)
	assert.Equal(t, "fiken", adapter.VendorName())

	assert.Equal(t, []string{"fiken", "tripletex"}, r.Vendors())
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{name: "fiken"}))
	assert.Error(t, r.Register(&fakeAdapter{name: "fiken"}))
}

func TestRegistry_UnknownVendor(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("visma")
	assert.True(t, errors.Is(err, ErrVendorNotRegistered))
}

func TestRegistry_EmptyVendorName(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&fakeAdapter{name: ""}))
}
