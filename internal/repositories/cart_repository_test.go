package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixsoft/internal/models/db_models"
)

func TestUpsertSaleLineLocksAndOverwrites(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	cartID := uuid.New()
	productID := uuid.New()
	existingID := uuid.New()

	// A sale line carries a NULL plan, so the lookup must match on
	// rental_plan_id IS NULL and lock the row before overwriting it.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = .+ AND product_kind = .+ AND product_id = .+ AND rental_plan_id IS NULL.*FOR UPDATE`).
		WithArgs(cartID, "SALE", productID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_kind", "product_id", "quantity", "rental_plan_id"}).
			AddRow(existingID, cartID, "SALE", productID, 2, nil))
	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item := &db_models.CartItem{
		CartID:      cartID,
		ProductKind: db_models.KindSale,
		ProductID:   productID,
		Quantity:    5,
	}
	err := repo.UpsertItem(context.Background(), item)
	require.NoError(t, err)

	assert.Equal(t, existingID, item.ID)
	assert.Equal(t, 5, item.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
