package item

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	domitem "example.com/order-management/internal/domain/item"
	"example.com/order-management/internal/infra/persistence/memory"
	"example.com/order-management/internal/metrics"
)

func newTestService(t *testing.T) (*Service, *prometheus.Registry) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	registry := prometheus.NewRegistry()
	return NewService(memory.NewItemRepository(), logger, metrics.NewStoreMetricsWithRegisterer(registry)), registry
}

func TestCreate_Hammer(t *testing.T) {
	svc, _ := newTestService(t)

	it, err := svc.Create(context.Background(), 5, map[string]any{
		"product_id": float64(1),
		"name":       "hammer",
		"quantity":   float64(1),
		"price":      11.50,
	})

	require.NoError(t, err)
	require.True(t, it.IsPersisted())
	require.Equal(t, int64(5), it.OrderID)
	require.Equal(t, "hammer", it.Serialize()["name"])
	require.Equal(t, it.ID, it.Serialize()["id"])
}

func TestCreate_MissingFieldRecordsInvalid(t *testing.T) {
	svc, registry := newTestService(t)

	_, err := svc.Create(context.Background(), 5, map[string]any{"product_id": float64(1), "name": "hammer", "quantity": float64(1)})

	require.EqualError(t, err, "Invalid item: missing price")
	count, err := testutil.GatherAndCount(registry, "orders_store_operations_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSaveAndDeleteLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	it := &domitem.Item{OrderID: 5, ProductID: 2, Name: "toilet paper", Quantity: 2, Price: 2.5}

	require.NoError(t, svc.Delete(ctx, it))

	require.NoError(t, svc.Save(ctx, it))
	id := it.ID
	require.NotZero(t, id)

	it.Quantity = 4
	require.NoError(t, svc.Save(ctx, it))
	require.Equal(t, id, it.ID)

	stored, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(4), stored.Quantity)

	require.NoError(t, svc.Delete(ctx, it))
	gone, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Nil(t, gone)

	require.ErrorIs(t, svc.Save(ctx, it), domitem.ErrItemNotFound)
}

func TestAll(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Save(ctx, &domitem.Item{OrderID: 1, ProductID: 1, Name: "hammer", Quantity: 1, Price: 11.5}))
	require.NoError(t, svc.Save(ctx, &domitem.Item{OrderID: 1, ProductID: 2, Name: "toilet paper", Quantity: 2, Price: 2.5}))

	items, err := svc.All(ctx)

	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestUpdate_KeepsOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	it := &domitem.Item{OrderID: 5, ProductID: 1, Name: "hammer", Quantity: 1, Price: 11.5}
	require.NoError(t, svc.Save(ctx, it))

	updated, err := svc.Update(ctx, it.ID, map[string]any{
		"order_id":   float64(77),
		"product_id": float64(1),
		"name":       "claw hammer",
		"quantity":   float64(2),
		"price":      13.0,
	})

	require.NoError(t, err)
	require.Equal(t, int64(5), updated.OrderID)
	require.Equal(t, "claw hammer", updated.Name)

	_, err = svc.Update(ctx, 999, map[string]any{})
	require.ErrorIs(t, err, domitem.ErrItemNotFound)
}
