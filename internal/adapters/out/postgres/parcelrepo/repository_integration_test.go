package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelflow/internal/adapters/out/postgres/parcelrepo"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
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

// ParcelRepositoryIntegrationTestSuite verifies parcel persistence behavior
// against a real PostgreSQL container.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(p))
	suite.Equal(p.TrackingCode().String(), loaded.TrackingCode().String())
	suite.Equal(p.Recipient().Name(), loaded.Recipient().Name())
	suite.Equal(parcel.Pending, loaded.Status())
	suite.Nil(loaded.Mission())
	suite.Nil(loaded.PriorStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingCode() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.GetByTrackingCode(ctx, p.TrackingCode())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(p))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_RoundTripsMissionState() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", p.ID(), p).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	missionID := kernel.NewUUID()
	suite.Require().NoError(p.AttachToMission(missionID, parcel.ToBePickedUp))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Mission())
	suite.True(loaded.Mission().IsEqual(missionID))
	suite.Require().NotNil(loaded.PriorStatus())
	suite.Equal(parcel.Pending, *loaded.PriorStatus())
	suite.Equal(parcel.ToBePickedUp, loaded.Status())

	// Detaching must write the nullable columns back to NULL.
	suite.Require().NoError(p.DetachFromMission())
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err = suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.Mission())
	suite.Nil(loaded.PriorStatus())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByIDs_MissingParcel() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	missing := kernel.NewUUID()
	_, err := suite.repository.GetAllByIDs(ctx, []kernel.UUID{p.ID(), missing})

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), missing.String())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByIDs_RejectsDuplicates() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	_, err := suite.repository.GetAllByIDs(ctx, []kernel.UUID{p.ID(), p.ID()})

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByIDs_PreservesRequestOrder() {
	ctx := context.Background()

	first := suite.createTestParcel()
	second := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	loaded, err := suite.repository.GetAllByIDs(ctx, []kernel.UUID{second.ID(), first.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 2)
	suite.True(loaded[0].IsEqual(second))
	suite.True(loaded[1].IsEqual(first))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByMission() {
	ctx := context.Background()
	missionID := kernel.NewUUID()

	held := suite.createTestParcel()
	suite.Require().NoError(held.AttachToMission(missionID, parcel.ToBePickedUp))
	free := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, held))
	suite.Require().NoError(suite.repository.Add(ctx, free))

	loaded, err := suite.repository.GetAllByMission(ctx, missionID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].IsEqual(held))
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	code, err := kernel.NewTrackingCode()
	suite.Require().NoError(err)

	recipient, err := parcel.NewRecipient(
		"Jane Doe", "+212600000001", "", "12 Rue des Fleurs", "Casablanca")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), code, kernel.NewUUID(), recipient, 1500, 24900, 3500, 1, "books")
	suite.Require().NoError(err)
	return p
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
