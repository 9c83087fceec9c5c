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

func TestOrderUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "orders" SET "status"=.+,"updated_at"=.+ WHERE id = .+`).
		WithArgs(string(db_models.OrderStatusCompleted), sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, db_models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	accountID := uuid.New()
	orderID := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE \(account_id = .+ AND id = .+\)`).
		WithArgs(accountID, orderID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := repo.GetByID(context.Background(), accountID, orderID)
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}
