package services_test

import (
	"testing"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreCustomer(t *testing.T, id kernel.UUID, orderIDs ...kernel.UUID) *customer.Customer {
	t.Helper()
	address, err := kernel.NewAddress(kernel.MustNewCountry("DE"))
	require.NoError(t, err)
	c, err := customer.RestoreCustomer(id, address, orderIDs)
	require.NoError(t, err)
	return c
}

func restoreHost(t *testing.T, id kernel.UUID, orderIDs ...kernel.UUID) *host.Host {
	t.Helper()
	address, err := kernel.NewAddress(kernel.MustNewCountry("US"))
	require.NoError(t, err)
	h, err := host.RestoreHost(id, address, true, orderIDs)
	require.NoError(t, err)
	return h
}

func TestFindViolations(t *testing.T) {
	t.Run("should accept consistent references", func(t *testing.T) {
		drafted := newDraftedOrder(t, "US", "DE")
		confirmed := newDraftedOrder(t, "US", "DE")
		hostID := kernel.NewUUID()
		require.NoError(t, confirmed.Confirm(hostID))

		customers := []*customer.Customer{
			restoreCustomer(t, drafted.CustomerID(), drafted.ID()),
			restoreCustomer(t, confirmed.CustomerID(), confirmed.ID()),
		}
		hosts := []*host.Host{restoreHost(t, hostID, confirmed.ID())}

		assert.Empty(t, services.FindViolations(customers, hosts, []*order.Order{drafted, confirmed}))
	})

	t.Run("should report missing and dangling references", func(t *testing.T) {
		unlisted := newDraftedOrder(t, "US", "DE")
		confirmed := newDraftedOrder(t, "US", "DE")
		hostID := kernel.NewUUID()
		require.NoError(t, confirmed.Confirm(hostID))
		ghost := kernel.NewUUID()

		customers := []*customer.Customer{
			restoreCustomer(t, unlisted.CustomerID()),
			restoreCustomer(t, confirmed.CustomerID(), confirmed.ID(), ghost),
		}
		hosts := []*host.Host{
			restoreHost(t, hostID),
			restoreHost(t, kernel.NewUUID(), unlisted.ID()),
		}

		got := services.FindViolations(customers, hosts, []*order.Order{unlisted, confirmed})

		kinds := make(map[services.ViolationKind]kernel.UUID)
		for _, v := range got {
			kinds[v.Kind] = v.OrderID
		}
		assert.Len(t, got, 4)
		assert.Equal(t, unlisted.ID(), kinds[services.MissingCustomerRef])
		assert.Equal(t, ghost, kinds[services.DanglingCustomerRef])
		assert.Equal(t, confirmed.ID(), kinds[services.MissingHostRef])
		assert.Equal(t, unlisted.ID(), kinds[services.DanglingHostRef])
	})
}
