package courierrepo_test

import (
	"context"
	"testing"

	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/courierrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// CourierRepositoryIntegrationTestSuite exercises the GORM courier
// repository against a real PostgreSQL instance.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *courierrepo.GormCourierRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))

	suite.repo = courierrepo.NewGormCourierRepository(db, noopTracker{})
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) restored(
	status courier.Status,
	available bool,
) *courier.Courier {
	c, err := courier.RestoreCourier(
		kernel.NewUUID(), "Mehmet", "+905551112233", status, available, 0, 0, 0)
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAddAndGet_Roundtrip() {
	ctx := context.Background()
	created := suite.restored(courier.Approved, true)

	suite.Require().NoError(suite.repo.Add(ctx, created))

	fetched, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.True(created.ID().IsEqual(fetched.ID()))
	suite.Equal(courier.Approved, fetched.Status())
	suite.True(fetched.IsAvailable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_PersistsCounters() {
	ctx := context.Background()
	c := suite.restored(courier.Approved, true)
	suite.Require().NoError(suite.repo.Add(ctx, c))

	suite.Require().NoError(c.MarkBusy())
	c.RecordDelivery()
	c.MarkAvailable()
	suite.Require().NoError(c.AddRating(5))
	suite.Require().NoError(suite.repo.Update(ctx, c))

	fetched, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(1, fetched.TotalDeliveries())
	suite.Equal(1, fetched.RatingCount())
	suite.InDelta(5.0, fetched.Rating(), 0.001)
	suite.True(fetched.IsAvailable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllAvailableApproved_FiltersPool() {
	ctx := context.Background()

	inPool := suite.restored(courier.Approved, true)
	busy := suite.restored(courier.Approved, false)
	pending := suite.restored(courier.Pending, true)
	suspended := suite.restored(courier.Suspended, true)

	for _, c := range []*courier.Courier{inPool, busy, pending, suspended} {
		suite.Require().NoError(suite.repo.Add(ctx, c))
	}

	pool, err := suite.repo.GetAllAvailableApproved(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pool, 1)
	suite.True(inPool.ID().IsEqual(pool[0].ID()))
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
