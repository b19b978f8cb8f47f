package cmd

import (
	"errors"
	"fmt"

	httpadapter "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/kafkapub"
	"forwarding/internal/adapters/out/metrics"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/adapters/out/quote"
	"forwarding/internal/core/application/transaction"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/jobs"
	"forwarding/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs  Config
	gormDB   *gorm.DB
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	publisher *kafkapub.Publisher
	runner    *transaction.Runner
	quoter    *quote.RateTable
	policy    services.ServiceSelectionPolicy
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, log *zap.Logger) (*CompositionRoot, error) {
	policy, err := services.PolicyByName(configs.ServicePolicy)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	c := &CompositionRoot{
		configs:  configs,
		gormDB:   gormDB,
		logger:   log,
		registry: registry,
		metrics:  m,
		quoter:   quote.NewRateTable(configs.QuoteCurrency),
		policy:   policy,
	}

	opts := []transaction.Option{
		transaction.WithMaxAttempts(configs.TxMaxAttempts),
		transaction.WithObserver(m),
		transaction.WithLogger(logger.Component(log, "transaction_runner")),
		transaction.WithTracer(otel.Tracer("forwarding/transaction")),
	}
	if configs.KafkaEnabled() {
		c.publisher = kafkapub.NewPublisher(
			configs.KafkaBrokers,
			configs.KafkaOrderChangedTopic,
			configs.KafkaBatchTimeout,
			logger.Component(log, "kafka_publisher"),
		)
		opts = append(opts, transaction.WithPublisher(c.publisher))
	}

	c.runner = transaction.NewRunner(postgres.NewGormUnitOfWorkFactory(gormDB), opts...)
	return c, nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateCreateHostCommandHandler() commands.CreateHostCommandHandler {
	return commands.NewCreateHostCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateSetHostAvailabilityCommandHandler() commands.SetHostAvailabilityCommandHandler {
	return commands.NewSetHostAvailabilityCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateDraftOrderCommandHandler() commands.DraftOrderCommandHandler {
	return commands.NewDraftOrderCommandHandler(c.runner, c.quoter, c.policy)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.runner, c.CreateDraftOrderCommandHandler())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateReceiveItemCommandHandler() commands.ReceiveItemCommandHandler {
	return commands.NewReceiveItemCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateAddItemPhotoCommandHandler() commands.AddItemPhotoCommandHandler {
	return commands.NewAddItemPhotoCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateSubmitShipmentInfoCommandHandler() commands.SubmitShipmentInfoCommandHandler {
	return commands.NewSubmitShipmentInfoCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditConsistencyQueryHandler() queries.AuditConsistencyQueryHandler {
	return queries.NewAuditConsistencyQueryHandler(c.runner)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCustomer:      c.CreateCreateCustomerCommandHandler(),
		CreateHost:          c.CreateCreateHostCommandHandler(),
		SetHostAvailability: c.CreateSetHostAvailabilityCommandHandler(),
		DraftOrder:          c.CreateDraftOrderCommandHandler(),
		EditOrder:           c.CreateEditOrderCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		ConfirmOrder:        c.CreateConfirmOrderCommandHandler(),
		ReceiveItem:         c.CreateReceiveItemCommandHandler(),
		AddItemPhoto:        c.CreateAddItemPhotoCommandHandler(),
		SubmitShipmentInfo:  c.CreateSubmitShipmentInfoCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListCustomerOrders:  c.CreateListCustomerOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAuditConsistencyQueryHandler(),
		c.metrics,
		c.configs.AuditSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics      { return c.metrics }
func (c *CompositionRoot) Registry() *prometheus.Registry { return c.registry }
func (c *CompositionRoot) Logger() *zap.Logger            { return c.logger }

// Close flushes pending events and releases the database pool.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka publisher: %w", err))
		}
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
