package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

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

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, customers, hosts").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_DraftIsAtomic writes an order and the customer's back-reference in one
// transaction and checks both are visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DraftIsAtomic() {
	ctx := context.Background()
	c := suite.seedCustomer()
	o := createTestOrder(c.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CustomerRepository().AddOrder(ctx, c.ID(), o.ID()))
	suite.Len(uow.TrackedAggregates(), 1)
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	stored, err := check.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(stored.HasOrder(o.ID()))

	restored, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Drafted, restored.Status())
	suite.Len(restored.Items(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	c := suite.seedCustomer()
	o := createTestOrder(c.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CustomerRepository().AddOrder(ctx, c.ID(), o.ID()))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.OrderRepository().Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	stored, err := check.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Empty(stored.OrderIDs())
}

// TestUnitOfWork_SerializationConflict makes two transactions update the same customer
// row; the loser must see errs.ErrTransientConflict.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SerializationConflict() {
	ctx := context.Background()
	c := suite.seedCustomer()

	first := suite.factory.Create()
	second := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	_, err := first.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	_, err = second.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.CustomerRepository().AddOrder(ctx, c.ID(), kernel.NewUUID()))

	done := make(chan error, 1)
	go func() {
		done <- second.CustomerRepository().AddOrder(ctx, c.ID(), kernel.NewUUID())
	}()

	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(first.Commit(ctx))

	select {
	case err = <-done:
	case <-time.After(10 * time.Second):
		suite.FailNow("second transaction did not finish")
	}
	suite.Require().ErrorIs(err, errs.ErrTransientConflict)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RejectsOverlappingCalls() {
	ctx := context.Background()
	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)

	release, err := uow.Enter()
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrConcurrentSessionUse)

	release()

	_, err = uow.OrderRepository().Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_HostsKeepRegistrationOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	var ids []kernel.UUID
	for _, country := range []string{"US", "DE", "US"} {
		address, err := kernel.NewAddress(kernel.MustNewCountry(country))
		suite.Require().NoError(err)
		h, err := host.NewHost(kernel.NewUUID(), address, true)
		suite.Require().NoError(err)
		suite.Require().NoError(uow.HostRepository().Add(ctx, h))
		ids = append(ids, h.ID())
	}

	hosts, err := uow.HostRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(hosts, 3)
	for i, h := range hosts {
		suite.True(h.ID().IsEqual(ids[i]))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCustomer() *customer.Customer {
	address, err := kernel.NewAddress(kernel.MustNewCountry("DE"))
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(kernel.NewUUID(), address)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CustomerRepository().Add(context.Background(), c))
	return c
}

func createTestOrder(customerID kernel.UUID) *order.Order {
	item, _ := order.NewDraftedItem(kernel.NewUUID(), "Running shoes", "Nike", 900)
	cost, _ := order.NewCost(1999, "USD")
	destination, _ := kernel.NewAddress(kernel.MustNewCountry("DE"))
	o, _ := order.NewDraftOrder(kernel.NewUUID(), customerID, kernel.MustNewCountry("US"), destination,
		[]*order.Item{item}, cost)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
