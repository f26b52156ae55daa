package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/storerepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/store"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStoreDemandQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStoreDemandQueryHandler
}

func (suite *GetStoreDemandQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&storerepo.StoreDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStoreDemandQueryHandler(db)
}

func (suite *GetStoreDemandQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStoreDemandQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE stores, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetStoreDemandQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetStoreDemandQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStoreDemandQueryHandlerTestSuite) TestHandle_CountsDemandPerLinkedStore() {
	courierID := kernel.NewUUID()

	market := suite.newLinkedStore("Corner Market")
	deli := suite.newLinkedStore("Downtown Deli")

	unlinked := suite.newStore("Dormant Deli")

	suite.saveStores(market, deli, unlinked)

	pending1 := suite.newOrder(market.ID(), "ORD-001")
	pending2 := suite.newOrder(market.ID(), "ORD-002")

	accepted := suite.newOrder(market.ID(), "ORD-003")
	suite.Require().NoError(accepted.Assign(courierID, "operator pick"))

	inRoute := suite.newOrder(deli.ID(), "ORD-004")
	suite.Require().NoError(inRoute.Assign(courierID, "operator pick"))
	suite.Require().NoError(inRoute.Accept())

	delivered := suite.newOrder(deli.ID(), "ORD-005")
	suite.Require().NoError(delivered.Assign(courierID, "operator pick"))
	suite.Require().NoError(delivered.Accept())
	suite.Require().NoError(delivered.Complete())

	ignored := suite.newOrder(unlinked.ID(), "ORD-006")

	suite.saveOrders(pending1, pending2, accepted, inRoute, delivered, ignored)

	query := queries.NewGetStoreDemandQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2, "Unlinked stores must not appear")

	suite.Equal("Corner Market", result[0].Name)
	suite.Equal(market.ID(), result[0].StoreID)
	suite.Equal(2, result[0].PendingOrders)
	suite.Equal(1, result[0].ActiveOrders)

	suite.Equal("Downtown Deli", result[1].Name)
	suite.Equal(0, result[1].PendingOrders)
	suite.Equal(1, result[1].ActiveOrders, "Delivered orders do not count as demand")
}

func (suite *GetStoreDemandQueryHandlerTestSuite) TestHandle_LinkedStoreWithoutOrders_HasZeroCounts() {
	quiet := suite.newLinkedStore("Quiet Corner")
	suite.saveStores(quiet)

	query := queries.NewGetStoreDemandQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(0, result[0].PendingOrders)
	suite.Equal(0, result[0].ActiveOrders)
}

func (suite *GetStoreDemandQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStoreDemandQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetStoreDemandQuery constructor")
}

func (suite *GetStoreDemandQueryHandlerTestSuite) newStore(name string) *store.Store {
	location, err := kernel.NewLocation(40.4168, -3.7038)
	suite.Require().NoError(err)

	s, err := store.NewStore(kernel.NewUUID(), name, location)
	suite.Require().NoError(err)
	return s
}

func (suite *GetStoreDemandQueryHandlerTestSuite) newLinkedStore(name string) *store.Store {
	s := suite.newStore(name)
	suite.Require().NoError(s.Link())
	return s
}

func (suite *GetStoreDemandQueryHandlerTestSuite) newOrder(
	storeID kernel.UUID,
	number string,
) *order.Order {
	location, err := kernel.NewLocation(40.4200, -3.7000)
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromCents(12500)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), storeID, number, "Alice Santos",
		"12 Main St", location, price, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *GetStoreDemandQueryHandlerTestSuite) saveStores(stores ...*store.Store) {
	repo := storerepo.NewGormStoreRepository(suite.db, &mockAggregateTracker{})
	for _, s := range stores {
		err := repo.Add(context.Background(), s)
		suite.Require().NoError(err)
	}
}

func (suite *GetStoreDemandQueryHandlerTestSuite) saveOrders(orders ...*order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	for _, o := range orders {
		err := repo.Add(context.Background(), o)
		suite.Require().NoError(err)
	}
}

func TestGetStoreDemandQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStoreDemandQueryHandlerTestSuite))
}
