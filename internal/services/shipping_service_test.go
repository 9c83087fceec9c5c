package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/pkg/utils"
)

type fakeShippingRepo struct {
	methods   map[uuid.UUID]*db_models.ShippingMethod
	shipments map[uuid.UUID]*db_models.Shipment
}

func newFakeShippingRepo() *fakeShippingRepo {
	return &fakeShippingRepo{
		methods:   make(map[uuid.UUID]*db_models.ShippingMethod),
		shipments: make(map[uuid.UUID]*db_models.Shipment),
	}
}

func (f *fakeShippingRepo) CreateMethod(_ context.Context, method *db_models.ShippingMethod) error {
	method.ID = uuid.New()
	f.methods[method.ID] = method
	return nil
}

func (f *fakeShippingRepo) GetMethodByID(_ context.Context, id string) (*db_models.ShippingMethod, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.methods[parsed], nil
}

func (f *fakeShippingRepo) ListMethods(_ context.Context) ([]db_models.ShippingMethod, error) {
	var out []db_models.ShippingMethod
	for _, m := range f.methods {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeShippingRepo) UpdateMethod(_ context.Context, method *db_models.ShippingMethod) error {
	f.methods[method.ID] = method
	return nil
}

func (f *fakeShippingRepo) DeleteMethod(_ context.Context, id uuid.UUID) error {
	delete(f.methods, id)
	return nil
}

func (f *fakeShippingRepo) CreateShipment(_ context.Context, shipment *db_models.Shipment) error {
	shipment.ID = uuid.New()
	f.shipments[shipment.ID] = shipment
	return nil
}

func (f *fakeShippingRepo) GetShipmentByTracking(_ context.Context, trackingNumber string) (*db_models.Shipment, error) {
	for _, s := range f.shipments {
		if s.TrackingNumber == trackingNumber {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeShippingRepo) ListShipmentsByContract(_ context.Context, contractID uuid.UUID) ([]db_models.Shipment, error) {
	var out []db_models.Shipment
	for _, s := range f.shipments {
		if s.RentalContractID != nil && *s.RentalContractID == contractID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeShippingRepo) UpdateShipmentStatus(_ context.Context, id uuid.UUID, status db_models.ShipmentStatus) error {
	if s, ok := f.shipments[id]; ok {
		s.Status = status
	}
	return nil
}

type shippingTestEnv struct {
	service      ShippingServiceInterface
	shippingRepo *fakeShippingRepo
	contractRepo *fakeContractRepo
}

func newShippingTestEnv() *shippingTestEnv {
	shippingRepo := newFakeShippingRepo()
	contractRepo := newFakeContractRepo()
	return &shippingTestEnv{
		service:      NewShippingService(shippingRepo, contractRepo),
		shippingRepo: shippingRepo,
		contractRepo: contractRepo,
	}
}

func (e *shippingTestEnv) method(name string) *db_models.ShippingMethod {
	method := &db_models.ShippingMethod{
		Name:                  name,
		Type:                  db_models.ShippingNational,
		BaseCost:              decimal.RequireFromString("5.00"),
		CostPerKg:             decimal.RequireFromString("1.50"),
		EstimatedDeliveryDays: 3,
	}
	method.ID = uuid.New()
	e.shippingRepo.methods[method.ID] = method
	return method
}

func TestCreateShipmentGeneratesTracking(t *testing.T) {
	env := newShippingTestEnv()
	method := env.method("Standard")

	shipment, err := env.service.CreateShipment(context.Background(), request_models.CreateShipmentRequest{
		ShippingMethodID:   method.ID.String(),
		OriginAddress:      "1 Warehouse Rd",
		DestinationAddress: "42 Customer St",
		CustomerName:       "Ada",
		CustomerEmail:      "ada@example.com",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(shipment.TrackingNumber, "PXS-"))
	assert.Equal(t, shipment.TrackingNumber, strings.ToUpper(shipment.TrackingNumber))
	assert.Equal(t, string(db_models.ShipmentStatusPending), shipment.Status)

	tracked, err := env.service.TrackShipment(context.Background(), shipment.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, shipment.ID, tracked.ID)
}

func TestCreateShipmentUnknownMethod(t *testing.T) {
	env := newShippingTestEnv()

	_, err := env.service.CreateShipment(context.Background(), request_models.CreateShipmentRequest{
		ShippingMethodID:   uuid.NewString(),
		OriginAddress:      "1 Warehouse Rd",
		DestinationAddress: "42 Customer St",
		CustomerName:       "Ada",
		CustomerEmail:      "ada@example.com",
	})
	assert.ErrorIs(t, err, utils.ErrShippingMethodNotFound)
}

func TestTrackUnknownShipment(t *testing.T) {
	env := newShippingTestEnv()

	_, err := env.service.TrackShipment(context.Background(), "PXS-DOESNOTEXIST")
	assert.ErrorIs(t, err, utils.ErrShipmentNotFound)
}

func TestShipmentStatusUpdate(t *testing.T) {
	env := newShippingTestEnv()
	method := env.method("Express")

	shipment, err := env.service.CreateShipment(context.Background(), request_models.CreateShipmentRequest{
		ShippingMethodID:   method.ID.String(),
		OriginAddress:      "1 Warehouse Rd",
		DestinationAddress: "42 Customer St",
		CustomerName:       "Ada",
		CustomerEmail:      "ada@example.com",
	})
	require.NoError(t, err)

	updated, err := env.service.UpdateShipmentStatus(context.Background(), shipment.TrackingNumber, "IN_TRANSIT")
	require.NoError(t, err)
	assert.Equal(t, "IN_TRANSIT", updated.Status)
}

func TestShippingMethodLifecycle(t *testing.T) {
	env := newShippingTestEnv()

	created, err := env.service.CreateMethod(context.Background(), request_models.CreateShippingMethodRequest{
		Name:                  "Local courier",
		Type:                  "LOCAL",
		BaseCost:              "2.50",
		CostPerKg:             "0.75",
		EstimatedDeliveryDays: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "2.50", created.BaseCost)

	updated, err := env.service.UpdateMethod(context.Background(), created.ID.String(), request_models.CreateShippingMethodRequest{
		Name:                  "Local courier",
		Type:                  "LOCAL",
		BaseCost:              "3.00",
		CostPerKg:             "0.75",
		EstimatedDeliveryDays: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "3.00", updated.BaseCost)

	require.NoError(t, env.service.DeleteMethod(context.Background(), created.ID.String()))

	err = env.service.DeleteMethod(context.Background(), created.ID.String())
	assert.ErrorIs(t, err, utils.ErrShippingMethodNotFound)
}
