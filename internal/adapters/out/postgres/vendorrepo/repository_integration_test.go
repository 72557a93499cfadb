package vendorrepo_test

import (
	"context"
	"testing"
	"time"

	"grabee/internal/adapters/out/postgres/vendorrepo"
	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/vendors"
	"grabee/internal/core/ports"
	"grabee/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the vendor repository's tracker dependency.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// VendorRepositoryIntegrationTestSuite verifies vendor persistence behavior
// against a real PostgreSQL instance, in particular that review decisions
// are conditional writes.
type VendorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vendorrepo.GormVendorRepository
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&vendorrepo.VendorDTO{}))
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendors").Error)
	suite.repository = vendorrepo.NewGormVendorRepository(suite.db, noopTracker{})
}

func (suite *VendorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VendorRepositoryIntegrationTestSuite) addPendingVendor() *vendors.Vendor {
	v, err := vendors.NewVendor(kernel.NewUUID(), "Warung Makmur", "https://blobs/cert-123.pdf")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), v))
	return v
}

func (suite *VendorRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	v := suite.addPendingVendor()

	loaded, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(v.ID()))
	suite.Equal("Warung Makmur", loaded.Name())
	suite.Equal("https://blobs/cert-123.pdf", loaded.CertificationURL())
	suite.Equal(vendors.PendingApproval, loaded.Status())
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestUpdateStatusFrom_PendingApplication_Succeeds() {
	ctx := context.Background()
	v := suite.addPendingVendor()

	previous := v.Status()
	suite.Require().NoError(v.Approve())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, v, previous))

	loaded, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal(vendors.Approved, loaded.Status())
}

func (suite *VendorRepositoryIntegrationTestSuite) TestUpdateStatusFrom_DecidedApplication_Conflict() {
	ctx := context.Background()
	v := suite.addPendingVendor()

	// A first reviewer approves the application
	suite.Require().NoError(v.Approve())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, v, vendors.PendingApproval))

	// A second reviewer holding the stale pending snapshot tries to reject
	stale, err := vendors.RestoreVendor(
		v.ID(), v.Name(), v.CertificationURL(), vendors.PendingApproval,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(stale.Reject())

	err = suite.repository.UpdateStatusFrom(ctx, stale, vendors.PendingApproval)
	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrConcurrentUpdate)

	// The first decision stands
	loaded, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal(vendors.Approved, loaded.Status())
}

func TestVendorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VendorRepositoryIntegrationTestSuite))
}
