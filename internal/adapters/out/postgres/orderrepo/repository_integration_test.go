package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"grabee/internal/adapters/out/postgres/orderrepo"
	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"
	"grabee/internal/core/ports"
	"grabee/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Siti Rahma", "12 Orchard Rd",
		[]string{"Nasi Lemak", "Teh Tarik"},
		time.Now(),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.CustomerID().IsEqual(testOrder.CustomerID()))
	suite.Equal("Siti Rahma", loaded.CustomerName())
	suite.Equal("12 Orchard Rd", loaded.DeliveryAddress())
	suite.Equal([]string{"Nasi Lemak", "Teh Tarik"}, loaded.Items())
	suite.Equal(order.Pending, loaded.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.UpdateDeliveryDetails("Ahmad Fauzi", "7 Clarke Quay"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Ahmad Fauzi", loaded.CustomerName())
	suite.Equal("7 Clarke Quay", loaded.DeliveryAddress())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PreservesCommittedStatus() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Another writer commits Pending -> Accepted
	accepted, err := order.RestoreOrder(
		testOrder.ID(), testOrder.CustomerID(),
		testOrder.CustomerName(), testOrder.DeliveryAddress(), testOrder.Items(),
		order.Pending, testOrder.CreatedAt(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, accepted, order.Pending))

	// A detail writer holding the stale Pending snapshot saves new details
	suite.Require().NoError(testOrder.UpdateDeliveryDetails("Ahmad Fauzi", "7 Clarke Quay"))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// The details land but the committed status stands
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Ahmad Fauzi", loaded.CustomerName())
	suite.Equal("7 Clarke Quay", loaded.DeliveryAddress())
	suite.Equal(order.Accepted, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_MatchingStatus_Succeeds() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	previous := testOrder.Status()
	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, testOrder, previous))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_StaleStatus_Conflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// A first writer advances the order
	previous := testOrder.Status()
	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, testOrder, previous))

	// A second writer holding the stale Pending snapshot loses
	stale, err := order.RestoreOrder(
		testOrder.ID(), testOrder.CustomerID(),
		testOrder.CustomerName(), testOrder.DeliveryAddress(), testOrder.Items(),
		order.Pending, testOrder.CreatedAt(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(stale.Accept())

	err = suite.repository.UpdateStatusFrom(ctx, stale, order.Pending)
	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrConcurrentUpdate)

	// The stored status is what the first writer set
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_LoadsOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Row locks need a transaction scope
	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	loaded, err := txRepo.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_UnknownID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
