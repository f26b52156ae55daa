package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/productrepo"
	"dispatch/internal/adapters/out/postgres/storerepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/store"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&storerepo.StoreDTO{},
		&productrepo.ProductDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests do not interfere with each other.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, couriers, stores, products").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated
// instances that each expose all four repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CourierRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.StoreRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, repeated begin,
// commit and rollback behave as documented.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail
// without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_DispatchTransaction runs a manual assignment across the
// order and courier repositories in a single transaction and verifies
// both sides persist together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DispatchTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStore := createTestStore(suite.T())
	testOrder := createTestOrder(suite.T(), testStore.ID())
	testCourier := createTestCourier(suite.T())
	suite.Require().NoError(testCourier.GoOnline())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.StoreRepository().Add(ctx, testStore))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))

	suite.Require().NoError(testOrder.Assign(testCourier.ID(), "operator pick"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

	suite.Require().NoError(testCourier.MarkBusy())
	suite.Require().NoError(uow.CourierRepository().Update(ctx, testCourier))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Courier())
	suite.True(retrievedOrder.Courier().IsEqual(testCourier.ID()))
	suite.Equal("operator pick", retrievedOrder.Rationale())

	retrievedCourier, err := newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.StatusBusy, retrievedCourier.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes
// across every repository touched inside the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStore := createTestStore(suite.T())
	testOrder := createTestOrder(suite.T(), testStore.ID())
	testCourier := createTestCourier(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.StoreRepository().Add(ctx, testStore))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err, "Order should be visible inside the transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().Error(err, "Courier should not exist after rollback")

	_, err = newUow.StoreRepository().Get(ctx, testStore.ID())
	suite.Require().Error(err, "Store should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies two concurrent unit of work
// instances only see their own uncommitted changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	storeID := kernel.NewUUID()
	order1 := createTestOrder(suite.T(), storeID)
	order2 := createTestOrder(suite.T(), storeID)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "First transaction should see its own order")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "First transaction should not see the other order")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Committed order should persist")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Rolled back order should not persist")
}

// TestUnitOfWork_WithoutTransaction verifies repositories auto-commit
// when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCourier := createTestCourier(suite.T())

	err := uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testCourier.ID()))
}

// TestUnitOfWork_DeliveryWorkflow drives an order through its whole
// lifecycle and settles the courier's wallet in the final transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStore := createTestStore(suite.T())
	testOrder := createTestOrder(suite.T(), testStore.ID())
	testCourier := createTestCourier(suite.T())
	suite.Require().NoError(testCourier.GoOnline())

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.StoreRepository().Add(ctx, testStore))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))

	suite.Require().NoError(testOrder.Assign(testCourier.ID(), "nearest free courier"))
	suite.Require().NoError(testCourier.MarkBusy())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.CourierRepository().Update(ctx, testCourier))

	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

	suite.Require().NoError(testOrder.Complete())
	earnings, err := testCourier.PayPolicy().Earnings(testOrder.Price())
	suite.Require().NoError(err)
	suite.Require().NoError(testCourier.Credit(earnings))
	suite.Require().NoError(testCourier.Release())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.CourierRepository().Update(ctx, testCourier))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())

	retrievedCourier, err := newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.StatusOnline, retrievedCourier.Status())
	suite.Equal(int64(850), retrievedCourier.Wallet().Cents())

	count, err := newUow.OrderRepository().CountActiveByCourier(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Zero(count, "Courier should have no active orders after delivery")
}

// TestUnitOfWork_CatalogRoundTrip verifies store and product repositories
// inside the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CatalogRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStore := createTestStore(suite.T())

	loc, err := kernel.NewLocation(40.4170, -3.7038)
	suite.Require().NoError(err)
	unlinkedStore, err := store.NewStore(kernel.NewUUID(), "Dormant Deli", loc)
	suite.Require().NoError(err)

	testProduct, err := product.NewProduct(
		kernel.NewUUID(), testStore.ID(), "Oat Milk 1L", 42, 6.5)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StoreRepository().Add(ctx, testStore))
	suite.Require().NoError(uow.StoreRepository().Add(ctx, unlinkedStore))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()

	linked, err := newUow.StoreRepository().GetAllLinked(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(linked, 1)
	suite.True(linked[0].ID().IsEqual(testStore.ID()))

	catalog, err := newUow.ProductRepository().GetByStore(ctx, testStore.ID())
	suite.Require().NoError(err)
	suite.Require().Len(catalog, 1)
	suite.Equal("Oat Milk 1L", catalog[0].Name())
	suite.Equal(42, catalog[0].Stock())
	suite.InDelta(6.5, catalog[0].AvgDailySales(), 0.0001)
}

// createTestStore creates a linked store for testing purposes.
func createTestStore(t *testing.T) *store.Store {
	t.Helper()
	loc, err := kernel.NewLocation(40.4168, -3.7038)
	if err != nil {
		t.Fatal(err)
	}
	s, err := store.NewStore(kernel.NewUUID(), "Corner Market", loc)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Link(); err != nil {
		t.Fatal(err)
	}
	return s
}

// createTestOrder creates a pending order for testing purposes.
func createTestOrder(t *testing.T, storeID kernel.UUID) *order.Order {
	t.Helper()
	loc, err := kernel.NewLocation(40.4200, -3.7000)
	if err != nil {
		t.Fatal(err)
	}
	price, err := kernel.NewMoneyFromCents(12500)
	if err != nil {
		t.Fatal(err)
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), storeID, "ORD-7001", "Alice Santos",
		"12 Main St", loc, price, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	return o
}

// createTestCourier creates an offline courier on a fixed pay policy.
func createTestCourier(t *testing.T) *courier.Courier {
	t.Helper()
	loc, err := kernel.NewLocation(40.4180, -3.7050)
	if err != nil {
		t.Fatal(err)
	}
	fixed, err := kernel.NewMoneyFromCents(850)
	if err != nil {
		t.Fatal(err)
	}
	policy, err := courier.NewFixedPayPolicy(fixed)
	if err != nil {
		t.Fatal(err)
	}
	c, err := courier.NewCourier(kernel.NewUUID(), "John Doe", loc, policy)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
