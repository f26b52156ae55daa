package queries_test

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockCourierRepository is a mock implementation of ports.CourierRepository.
type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllOnline(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetInRouteByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) (int, error) {
	args := m.Called(ctx, courierID)
	return args.Int(0), args.Error(1)
}

// MockProductRepository is a mock implementation of ports.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByStore(
	ctx context.Context,
	storeID kernel.UUID,
) ([]*product.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

// MockRoutePlanCache is a mock implementation of ports.RoutePlanCache.
type MockRoutePlanCache struct {
	mock.Mock
}

func (m *MockRoutePlanCache) Get(
	ctx context.Context,
	courierID kernel.UUID,
	orderIDs []kernel.UUID,
) (services.RoutePlan, error) {
	args := m.Called(ctx, courierID, orderIDs)
	return args.Get(0).(services.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanCache) Put(
	ctx context.Context,
	courierID kernel.UUID,
	orderIDs []kernel.UUID,
	plan services.RoutePlan,
) error {
	args := m.Called(ctx, courierID, orderIDs, plan)
	return args.Error(0)
}

// MockDispatchOracle is a mock implementation of ports.DispatchOracle.
type MockDispatchOracle struct {
	mock.Mock
}

func (m *MockDispatchOracle) SuggestAssignment(
	ctx context.Context,
	o *order.Order,
	pool []*courier.Courier,
) (string, error) {
	args := m.Called(ctx, o, pool)
	return args.String(0), args.Error(1)
}

func (m *MockDispatchOracle) ParseVoiceCommand(
	ctx context.Context,
	transcript string,
	pending []*order.Order,
	roster []*courier.Courier,
) (ports.VoiceDispatchResult, error) {
	args := m.Called(ctx, transcript, pending, roster)
	return args.Get(0).(ports.VoiceDispatchResult), args.Error(1)
}

func (m *MockDispatchOracle) SequenceRoute(
	ctx context.Context,
	c *courier.Courier,
	inRoute []*order.Order,
) (ports.RouteSuggestionResult, error) {
	args := m.Called(ctx, c, inRoute)
	return args.Get(0).(ports.RouteSuggestionResult), args.Error(1)
}

func (m *MockDispatchOracle) PredictRestock(
	ctx context.Context,
	catalog []*product.Product,
) ([]ports.RestockForecastItem, error) {
	args := m.Called(ctx, catalog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RestockForecastItem), args.Error(1)
}
