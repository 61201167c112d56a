package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domitem "example.com/order-management/internal/domain/item"
)

func TestItemRepository_Lifecycle(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domitem.Item{OrderID: 5, ProductID: 1, Name: "hammer", Quantity: 1, Price: 11.5})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	created.Quantity = 3
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), stored.Quantity)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domitem.ErrItemNotFound)
	require.ErrorIs(t, repo.Delete(ctx, created.ID), domitem.ErrItemNotFound)
}
