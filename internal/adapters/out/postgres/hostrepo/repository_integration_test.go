package hostrepo_test

import (
	"context"
	"testing"

	"forwarding/internal/adapters/out/postgres/hostrepo"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

func (m *MockSession) Enter() (func(), error) {
	return func() {}, nil
}

type HostRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *hostrepo.GormHostRepository
	session    *MockSession
}

func (suite *HostRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&hostrepo.HostDTO{}))
}

func (suite *HostRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE hosts").Error)

	suite.session = new(MockSession)
	suite.session.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = hostrepo.NewGormHostRepository(suite.db, suite.session)
}

func (suite *HostRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HostRepositoryIntegrationTestSuite) newHost(country string, available bool) *host.Host {
	address, err := kernel.NewAddress(kernel.MustNewCountry(country))
	suite.Require().NoError(err)
	h, err := host.NewHost(kernel.NewUUID(), address, available)
	suite.Require().NoError(err)
	return h
}

func (suite *HostRepositoryIntegrationTestSuite) TestAdd_Get_Update() {
	ctx := context.Background()
	h := suite.newHost("US", true)

	suite.Require().NoError(suite.repository.Add(ctx, h))
	suite.ErrorIs(suite.repository.Add(ctx, h), errs.ErrDuplicateKey)

	h.SetAvailability(false)
	suite.Require().NoError(suite.repository.Update(ctx, h))

	got, err := suite.repository.Get(ctx, h.ID())
	suite.Require().NoError(err)
	suite.False(got.IsAvailable())
	suite.Equal("US", got.Country().Code())

	suite.ErrorIs(suite.repository.Update(ctx, suite.newHost("US", true)), errs.ErrObjectNotFound)
}

func (suite *HostRepositoryIntegrationTestSuite) TestGetAll_RegistrationOrder() {
	ctx := context.Background()
	hosts := []*host.Host{suite.newHost("US", true), suite.newHost("US", false), suite.newHost("DE", true)}
	for _, h := range hosts {
		suite.Require().NoError(suite.repository.Add(ctx, h))
	}

	got, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, len(hosts))
	for i := range hosts {
		suite.True(got[i].ID().IsEqual(hosts[i].ID()))
	}
}

func (suite *HostRepositoryIntegrationTestSuite) TestAddOrder_RemoveOrder() {
	ctx := context.Background()
	h := suite.newHost("US", true)
	suite.Require().NoError(suite.repository.Add(ctx, h))
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.AddOrder(ctx, h.ID(), orderID))
	suite.ErrorIs(suite.repository.AddOrder(ctx, h.ID(), orderID), errs.ErrStateConflict)

	got, err := suite.repository.Get(ctx, h.ID())
	suite.Require().NoError(err)
	suite.Equal(1, got.OrderCount())

	suite.Require().NoError(suite.repository.RemoveOrder(ctx, h.ID(), orderID))
	suite.ErrorIs(suite.repository.RemoveOrder(ctx, h.ID(), orderID), errs.ErrStateConflict)
	suite.ErrorIs(suite.repository.AddOrder(ctx, kernel.NewUUID(), orderID), errs.ErrObjectNotFound)
}

func TestHostRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HostRepositoryIntegrationTestSuite))
}
