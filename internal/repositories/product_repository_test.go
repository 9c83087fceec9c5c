package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementStockApplied(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleProductRepository(db)
	id := uuid.NewString()

	mock.ExpectExec(`UPDATE "sale_products" SET "stock_quantity"=stock_quantity - .+ WHERE \(id = .+ AND stock_quantity >= .+\)`).
		WithArgs(3, id, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.DecrementStock(context.Background(), id, 3)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockShortfall(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleProductRepository(db)
	id := uuid.NewString()

	// The guard in the WHERE clause matches no rows when stock is short.
	mock.ExpectExec(`UPDATE "sale_products" SET "stock_quantity"=stock_quantity - .+`).
		WithArgs(10, id, 10).
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.DecrementStock(context.Background(), id, 10)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleProductRepository(db)
	id := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "sale_products" WHERE id = .+`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleProductRepository(db)
	id := uuid.NewString()

	mock.ExpectQuery(`SELECT "stock_quantity" FROM "sale_products" WHERE id = .+`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(7))

	stock, err := repo.GetStock(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
