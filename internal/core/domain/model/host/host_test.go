package host_test

import (
	"testing"

	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddress(t *testing.T, country string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.MustNewCountry(country))
	require.NoError(t, err)
	return a
}

func TestHost_CanServe(t *testing.T) {
	h, err := host.NewHost(kernel.NewUUID(), newAddress(t, "US"), true)
	require.NoError(t, err)

	assert.True(t, h.CanServe(kernel.MustNewCountry("US")))
	assert.False(t, h.CanServe(kernel.MustNewCountry("DE")))

	h.SetAvailability(false)
	assert.False(t, h.CanServe(kernel.MustNewCountry("US")))
}

func TestHost_Orders(t *testing.T) {
	first, second := kernel.NewUUID(), kernel.NewUUID()
	h, err := host.RestoreHost(kernel.NewUUID(), newAddress(t, "US"), true, []kernel.UUID{first})
	require.NoError(t, err)
	assert.Equal(t, 1, h.OrderCount())

	require.NoError(t, h.AddOrder(second))
	assert.Equal(t, 2, h.OrderCount())
	assert.ErrorIs(t, h.AddOrder(second), errs.ErrStateConflict)

	require.NoError(t, h.RemoveOrder(first))
	assert.ErrorIs(t, h.RemoveOrder(first), errs.ErrStateConflict)
	assert.True(t, h.HasOrder(second))
}

func TestHost_Validate(t *testing.T) {
	var h *host.Host
	assert.ErrorIs(t, h.Validate(), host.ErrHostIsNotConstructed)

	_, err := host.NewHost(kernel.UUID{}, newAddress(t, "US"), true)
	require.Error(t, err)
}
