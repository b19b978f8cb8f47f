package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/orderrepo"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockSession is a mock implementation of the repository's session.
type MockSession struct {
	mock.Mock
}

func (m *MockSession) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

func (m *MockSession) Enter() (func(), error) {
	return func() {}, nil
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	session    *MockSession
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

	suite.session = new(MockSession)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.session)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customerID kernel.UUID, items int) *order.Order {
	list := make([]*order.Item, 0, items)
	for range items {
		item, err := order.NewDraftedItem(kernel.NewUUID(), "Running shoes", "Nike", 900)
		suite.Require().NoError(err)
		list = append(list, item)
	}
	cost, err := order.NewCost(2450, "USD")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress(kernel.MustNewCountry("DE"))
	suite.Require().NoError(err)

	o, err := order.NewDraftOrder(kernel.NewUUID(), customerID, kernel.MustNewCountry("US"), destination, list, cost)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_And_Get() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), 2)
	suite.session.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.True(got.IsOwnedBy(o.CustomerID()))
	suite.Equal(order.Drafted, got.Status())
	suite.Equal("US", got.OriginCountry().Code())
	suite.Equal("DE", got.Destination().Country().Code())
	suite.Equal(int64(2450), got.ShipmentCost().Amount())
	suite.Require().Len(got.Items(), 2)
	suite.True(got.Items()[0].ID().IsEqual(o.Items()[0].ID()))
	suite.Empty(got.DomainEvents())
	suite.session.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Duplicate() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), 1)
	suite.session.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	err := suite.repository.Add(ctx, o)

	suite.ErrorIs(err, errs.ErrDuplicateKey)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycle() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), 1)
	suite.session.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	hostID := kernel.NewUUID()
	itemID := o.Items()[0].ID()
	receivedAt := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	photo, err := order.NewPhoto("s3://photos/1.jpg")
	suite.Require().NoError(err)
	info, err := order.NewShipmentInfo("LX123456789DE")
	suite.Require().NoError(err)

	suite.Require().NoError(o.Confirm(hostID))
	suite.Require().NoError(o.ReceiveItem(hostID, itemID, receivedAt))
	suite.Require().NoError(o.AddItemPhotos(hostID, itemID, []order.Photo{photo}))
	suite.Require().NoError(o.SubmitShipmentInfo(hostID, info))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, got.Status())
	suite.True(got.IsAssignedTo(hostID))
	suite.Equal("LX123456789DE", got.ShipmentInfo().TrackingNumber())

	item, err := got.Item(itemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(item.ReceivedDate())
	suite.True(receivedAt.Equal(*item.ReceivedDate()))
	suite.Equal([]order.Photo{photo}, item.Photos())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	o := suite.newOrder(kernel.NewUUID(), 1)
	err := suite.repository.Update(context.Background(), o)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RequiresExactMatch() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	o := suite.newOrder(customerID, 1)
	suite.session.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.Delete(ctx, ports.OrderFilter{ID: o.ID(), Status: order.Drafted, CustomerID: kernel.NewUUID()}, nil)
	suite.ErrorIs(err, errs.ErrObjectNotFound, "foreign customer must not delete")

	err = suite.repository.Delete(ctx, ports.OrderFilter{ID: o.ID(), Status: order.Confirmed, CustomerID: customerID}, nil)
	suite.ErrorIs(err, errs.ErrObjectNotFound, "status must match")

	suite.Require().NoError(suite.repository.Delete(ctx, ports.OrderFilter{ID: o.ID(), Status: order.Drafted, CustomerID: customerID}, o))

	err = suite.repository.Delete(ctx, ports.OrderFilter{ID: o.ID()}, nil)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByCustomer_OldestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	suite.session.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.newOrder(customerID, 1)
	other := suite.newOrder(kernel.NewUUID(), 1)
	second := suite.newOrder(customerID, 1)
	for _, o := range []*order.Order{first, other, second} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.ListByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].IsEqual(first))
	suite.True(orders[1].IsEqual(second))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
