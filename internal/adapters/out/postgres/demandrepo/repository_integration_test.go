package demandrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelflow/internal/adapters/out/postgres/demandrepo"
	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DemandRepositoryIntegrationTestSuite verifies demand persistence behavior
// against a real PostgreSQL container.
type DemandRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *demandrepo.GormDemandRepository
	tracker    *MockAggregateTracker
}

func (suite *DemandRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&demandrepo.DemandDTO{},
		&demandrepo.DemandParcelDTO{},
	))
}

func (suite *DemandRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE demand_parcels, demands").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = demandrepo.NewGormDemandRepository(suite.db, suite.tracker)
}

func (suite *DemandRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DemandRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	d := suite.createTestDemand("casablanca-center", 3)

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(d))
	suite.Equal("casablanca-center", loaded.Agency())
	suite.Equal(demand.ReviewPending, loaded.ReviewState())
	suite.Len(loaded.ParcelIDs(), 3)
	suite.False(loaded.InMission())
	suite.Nil(loaded.Reviewer())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DemandRepositoryIntegrationTestSuite) TestUpdate_RoundTripsReview() {
	ctx := context.Background()
	d := suite.createTestDemand("casablanca-center", 1)

	suite.tracker.On("TrackAggregate", d.ID(), d).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	reviewerID := kernel.NewUUID()
	reviewedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(d.Review(demand.Accepted, reviewerID, "all good", reviewedAt))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(demand.Accepted, loaded.ReviewState())
	suite.Require().NotNil(loaded.Reviewer())
	suite.True(loaded.Reviewer().IsEqual(reviewerID))
	suite.Require().NotNil(loaded.ReviewedAt())
	suite.True(loaded.ReviewedAt().Equal(reviewedAt))
	suite.Equal("all good", loaded.ReviewNotes())
	suite.True(loaded.IsAssignable())
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGetAllAssignable() {
	ctx := context.Background()
	reviewerID := kernel.NewUUID()

	assignable := suite.createTestDemand("casablanca-center", 1)
	suite.Require().NoError(assignable.Review(demand.Accepted, reviewerID, "", time.Now()))

	declined := suite.createTestDemand("casablanca-center", 1)
	suite.Require().NoError(declined.Review(demand.NotAccepted, reviewerID, "", time.Now()))

	consumed := suite.createTestDemand("casablanca-center", 1)
	suite.Require().NoError(consumed.Review(demand.Accepted, reviewerID, "", time.Now()))
	suite.Require().NoError(consumed.MarkInMission())

	otherAgency := suite.createTestDemand("rabat-hub", 1)
	suite.Require().NoError(otherAgency.Review(demand.Accepted, reviewerID, "", time.Now()))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(4)
	for _, d := range []*demand.Demand{assignable, declined, consumed, otherAgency} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	loaded, err := suite.repository.GetAllAssignable(ctx, "casablanca-center")
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].IsEqual(assignable))
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGetAllByIDsForUpdate() {
	ctx := context.Background()
	d := suite.createTestDemand("casablanca-center", 2)

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.GetAllByIDsForUpdate(ctx, []kernel.UUID{d.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.Len(loaded[0].ParcelIDs(), 2)
}

func (suite *DemandRepositoryIntegrationTestSuite) TestGetAllByIDsForUpdate_RejectsDuplicates() {
	ctx := context.Background()
	d := suite.createTestDemand("casablanca-center", 1)

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	_, err := suite.repository.GetAllByIDsForUpdate(ctx, []kernel.UUID{d.ID(), d.ID()})

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *DemandRepositoryIntegrationTestSuite) createTestDemand(agency string, parcelCount int) *demand.Demand {
	parcelIDs := make([]kernel.UUID, 0, parcelCount)
	for range parcelCount {
		parcelIDs = append(parcelIDs, kernel.NewUUID())
	}

	d, err := demand.NewDemand(
		kernel.NewUUID(), kernel.NewUUID(), agency, parcelIDs, time.Now().UTC())
	suite.Require().NoError(err)
	return d
}

func TestDemandRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DemandRepositoryIntegrationTestSuite))
}
