package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	domitem "example.com/order-management/internal/domain/item"
)

var itemColumns = []string{"id", "order_id", "product_id", "name", "quantity", "price"}

func newItemRepo(t *testing.T) (*ItemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewItemRepository(db), mock
}

func TestItemRepository_Create(t *testing.T) {
	repo, mock := newItemRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items (order_id, product_id, name, quantity, price)")).
		WithArgs(int64(5), int64(1), "hammer", int64(1), 11.5).
		WillReturnResult(sqlmock.NewResult(10, 1))

	it, err := repo.Create(context.Background(), &domitem.Item{OrderID: 5, ProductID: 1, Name: "hammer", Quantity: 1, Price: 11.5})

	require.NoError(t, err)
	require.Equal(t, int64(10), it.ID)
}

func TestItemRepository_UpdateMissing(t *testing.T) {
	repo, mock := newItemRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &domitem.Item{ID: 10, OrderID: 5})

	require.ErrorIs(t, err, domitem.ErrItemNotFound)
}

func TestItemRepository_GetByID(t *testing.T) {
	repo, mock := newItemRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE id = ?")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(int64(10), int64(5), int64(1), "hammer", int64(1), 11.5))
	mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE id = ?")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	it, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, "hammer", it.Name)
	require.Equal(t, int64(5), it.OrderID)

	_, err = repo.GetByID(context.Background(), 11)
	require.ErrorIs(t, err, domitem.ErrItemNotFound)
}

func TestItemRepository_ListAndDelete(t *testing.T) {
	repo, mock := newItemRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM items")).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(int64(1), int64(5), int64(1), "hammer", int64(1), 11.5).
			AddRow(int64(2), int64(5), int64(2), "toilet paper", int64(2), 2.5))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE id = ?")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, repo.Delete(context.Background(), 2))
}

func TestItemRepository_CreateUnknownOrder(t *testing.T) {
	repo, mock := newItemRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items")).
		WillReturnError(&gomysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})

	it := &domitem.Item{OrderID: 5, ProductID: 1, Name: "hammer", Quantity: 1, Price: 11.5}
	_, err := repo.Create(context.Background(), it)

	require.ErrorIs(t, err, domitem.ErrUnknownOrder)
	require.False(t, it.IsPersisted())
}
