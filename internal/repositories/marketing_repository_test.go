package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemCouponCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMarketingRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "coupons" SET "used_count"=used_count \+ 1 WHERE \(id = .+ AND used_count < usage_limit\)`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	redeemed, err := repo.RedeemCoupon(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, redeemed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemCouponAtLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMarketingRepository(db)
	id := uuid.New()

	// Once used_count reaches usage_limit the conditional UPDATE is a no-op,
	// so a concurrent redemption of the last use cannot double-spend it.
	mock.ExpectExec(`UPDATE "coupons" SET "used_count"=used_count \+ 1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	redeemed, err := repo.RedeemCoupon(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, redeemed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCouponByCodeNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMarketingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "coupons" WHERE code = .+`).
		WithArgs("NOPE", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	coupon, err := repo.GetCouponByCode(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Nil(t, coupon)
	assert.NoError(t, mock.ExpectationsWereMet())
}
