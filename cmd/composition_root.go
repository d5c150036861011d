package cmd

import (
	"net/http"

	"laundry/internal/adapters/out/catalog"
	"laundry/internal/adapters/out/kafka"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/eventrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	catalogClient     *catalog.Client
	eventPublisher    *kafka.Publisher
	reminderPublisher *kafka.ReminderPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogClient:     catalog.NewClient(config.CatalogBaseURL, http.DefaultClient),
		eventPublisher:    kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaStageEventsTopic),
		reminderPublisher: kafka.NewReminderPublisher([]string{config.KafkaHost}, config.KafkaPaymentRemindersTopic),
	}
}

func (c *CompositionRoot) uowFactoryAdapter() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryAdapter(), c.catalogClient, c.eventPublisher)
}

func (c *CompositionRoot) CreateSubmitOrderStageCommandHandler() commands.SubmitOrderStageCommandHandler {
	return commands.NewSubmitOrderStageCommandHandler(c.uowFactoryAdapter(), c.eventPublisher)
}

func (c *CompositionRoot) CreateSubmitProcessingStageCommandHandler() commands.SubmitProcessingStageCommandHandler {
	return commands.NewSubmitProcessingStageCommandHandler(c.uowFactoryAdapter(), c.eventPublisher)
}

func (c *CompositionRoot) CreateSubmitDeliveryStageCommandHandler() commands.SubmitDeliveryStageCommandHandler {
	return commands.NewSubmitDeliveryStageCommandHandler(c.uowFactoryAdapter(), c.eventPublisher)
}

func (c *CompositionRoot) CreateRecordWeightCommandHandler() commands.RecordWeightCommandHandler {
	return commands.NewRecordWeightCommandHandler(c.uowFactoryAdapter(), c.eventPublisher)
}

func (c *CompositionRoot) CreateSubmitPaymentProofCommandHandler() commands.SubmitPaymentProofCommandHandler {
	return commands.NewSubmitPaymentProofCommandHandler(c.uowFactoryAdapter(), c.eventPublisher)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.uowFactoryAdapter(), c.eventPublisher)
}

func (c *CompositionRoot) CreateGetOrderStateQueryHandler() queries.GetOrderStateQueryHandler {
	return queries.NewGetOrderStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB, eventrepo.NewGormStageEventRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersAwaitingPaymentQueryHandler() queries.GetOrdersAwaitingPaymentQueryHandler {
	return queries.NewGetOrdersAwaitingPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) ReminderPublisher() ports.ReminderPublisher {
	return c.reminderPublisher
}

// Close releases outbound connections held by the adapters.
func (c *CompositionRoot) Close() error {
	if err := c.eventPublisher.Close(); err != nil {
		return err
	}
	return c.reminderPublisher.Close()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
