package eventrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/eventrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StageEventRepositoryIntegrationTestSuite provides integration tests for the
// stage-event log using PostgreSQL containers, covering sequence allocation
// and the composite uniqueness that concurrency control depends on.
type StageEventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *eventrepo.GormStageEventRepository
}

func (suite *StageEventRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&eventrepo.StageEventDTO{}))
}

func (suite *StageEventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stage_events").Error)
	suite.repository = eventrepo.NewGormStageEventRepository(suite.db)
}

func (suite *StageEventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestAppend_AssignsSequentialNumbers() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	first := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	second := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageProcessing), actor, "")

	suite.Require().NoError(suite.repository.Append(ctx, first))
	suite.Require().NoError(suite.repository.Append(ctx, second))

	suite.Equal(1, first.Seq())
	suite.Equal(2, second.Seq())
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestAppend_TracksNumberIndependently() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	statusEvent := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	invoiceEvent := suite.createEvent(orderID, order.TrackInvoice, int(payment.Pending), actor, "")

	suite.Require().NoError(suite.repository.Append(ctx, statusEvent))
	suite.Require().NoError(suite.repository.Append(ctx, invoiceEvent))

	// Each (order, track) log starts at one
	suite.Equal(1, statusEvent.Seq())
	suite.Equal(1, invoiceEvent.Seq())
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestAppend_DuplicateSeq_PersistenceError() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	appended := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	suite.Require().NoError(suite.repository.Append(ctx, appended))

	// A concurrent append that read the same maximum would claim the same
	// slot; the unique index must reject it
	colliding := eventrepo.StageEventDTO{
		OrderID:    orderID.Bytes(),
		Track:      int(order.TrackOrderStatus),
		Value:      int(order.StageProcessing),
		Seq:        appended.Seq(),
		ActorID:    actor.ID().Bytes(),
		ActorRole:  string(actor.Role()),
		RecordedAt: time.Now().UTC(),
	}
	err := suite.db.Create(&colliding).Error
	suite.Require().Error(err, "unique index should reject the duplicate slot")
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestGetByOrder_OrderedByTrackAndSeq() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	events := []*order.StageEvent{
		suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, ""),
		suite.createEvent(orderID, order.TrackInvoice, int(payment.Pending), actor, ""),
		suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageProcessing), actor, ""),
		suite.createEvent(orderID, order.TrackProcessing, int(order.StageWashing), actor, ""),
	}
	for _, event := range events {
		suite.Require().NoError(suite.repository.Append(ctx, event))
	}

	// Another order's events must not leak in
	otherEvent := suite.createEvent(kernel.NewUUID(), order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	suite.Require().NoError(suite.repository.Append(ctx, otherEvent))

	retrieved, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved, 4)

	for i := 1; i < len(retrieved); i++ {
		prev, curr := retrieved[i-1], retrieved[i]
		if prev.Track() == curr.Track() {
			suite.Less(prev.Seq(), curr.Seq())
		} else {
			suite.Less(int(prev.Track()), int(curr.Track()))
		}
	}
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestFindRecent_MatchesWithinWindow() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	event := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	suite.Require().NoError(suite.repository.Append(ctx, event))

	found, err := suite.repository.FindRecent(
		ctx, orderID, order.TrackOrderStatus, int(order.StageToWeigh),
		actor.ID(), time.Now().UTC().Add(-10*time.Second),
	)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(event.Seq(), found.Seq())
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestFindRecent_OutsideWindow_ReturnsNil() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	event := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	suite.Require().NoError(suite.repository.Append(ctx, event))

	found, err := suite.repository.FindRecent(
		ctx, orderID, order.TrackOrderStatus, int(order.StageToWeigh),
		actor.ID(), time.Now().UTC().Add(time.Minute),
	)
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestFindRecent_DifferentActor_ReturnsNil() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleShop)

	event := suite.createEvent(orderID, order.TrackOrderStatus, int(order.StageToWeigh), actor, "")
	suite.Require().NoError(suite.repository.Append(ctx, event))

	found, err := suite.repository.FindRecent(
		ctx, orderID, order.TrackOrderStatus, int(order.StageToWeigh),
		kernel.NewUUID(), time.Now().UTC().Add(-10*time.Second),
	)
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *StageEventRepositoryIntegrationTestSuite) TestAppend_RoundTripsProofAndActor() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	actor := suite.createTestActor(order.RoleRider)

	event := suite.createEvent(
		orderID, order.TrackDelivery, int(order.StageRiderBooked),
		actor, "https://proofs.example/booking.jpg",
	)
	suite.Require().NoError(suite.repository.Append(ctx, event))

	retrieved, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved, 1)

	suite.Equal(orderID, retrieved[0].OrderID())
	suite.Equal(order.TrackDelivery, retrieved[0].Track())
	suite.Equal(order.StageRiderBooked, retrieved[0].Stage())
	suite.Equal(actor.ID(), retrieved[0].Actor().ID())
	suite.Equal(order.RoleRider, retrieved[0].Actor().Role())
	suite.Equal("https://proofs.example/booking.jpg", retrieved[0].ProofURL())
}

func (suite *StageEventRepositoryIntegrationTestSuite) createTestActor(role order.Role) order.Actor {
	actor, err := order.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return actor
}

func (suite *StageEventRepositoryIntegrationTestSuite) createEvent(
	orderID kernel.UUID,
	track order.Track,
	value int,
	actor order.Actor,
	proofURL string,
) *order.StageEvent {
	event, err := order.NewStageEvent(orderID, track, value, actor, proofURL)
	suite.Require().NoError(err)
	return event
}

func TestStageEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StageEventRepositoryIntegrationTestSuite))
}
