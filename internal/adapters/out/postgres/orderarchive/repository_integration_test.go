package orderarchive_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderarchive"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderArchiveIntegrationTestSuite provides integration tests for the order
// archive using PostgreSQL containers to verify database persistence
// behavior.
type OrderArchiveIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	archive   *orderarchive.GormOrderArchive
}

func (suite *OrderArchiveIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderarchive.ArchivedOrderDTO{})
	suite.Require().NoError(err)

	suite.archive = orderarchive.NewGormOrderArchive(db)
}

func (suite *OrderArchiveIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderArchiveIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE archived_orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderArchiveIntegrationTestSuite) archivedOrder(orderID int64, finishedAt time.Time) ports.ArchivedOrder {
	return ports.ArchivedOrder{
		OrderID:        orderID,
		CustomerID:     kernel.NewUUID().String(),
		CustomerName:   "Alice",
		Address:        "12 High Street",
		Total:          236,
		PaymentMode:    "cod",
		Status:         order.Completed,
		AssignedWorker: "w1",
		FinishedAt:     finishedAt,
	}
}

func (suite *OrderArchiveIntegrationTestSuite) TestSave_PersistsRecord() {
	ctx := context.Background()
	finishedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	err := suite.archive.Save(ctx, suite.archivedOrder(1, finishedAt))
	suite.Require().NoError(err)

	record, err := suite.archive.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(1), record.OrderID)
	suite.Equal("Alice", record.CustomerName)
	suite.Equal("12 High Street", record.Address)
	suite.InDelta(236.0, record.Total, 0.001)
	suite.Equal("cod", record.PaymentMode)
	suite.Equal(order.Completed, record.Status)
	suite.Equal("w1", record.AssignedWorker)
	suite.WithinDuration(finishedAt, record.FinishedAt, time.Second)
}

func (suite *OrderArchiveIntegrationTestSuite) TestSave_DuplicateOrderIDFails() {
	ctx := context.Background()
	finishedAt := time.Now().UTC()

	err := suite.archive.Save(ctx, suite.archivedOrder(1, finishedAt))
	suite.Require().NoError(err)

	err = suite.archive.Save(ctx, suite.archivedOrder(1, finishedAt))
	suite.Require().Error(err)
}

func (suite *OrderArchiveIntegrationTestSuite) TestGet_UnknownOrderIsNotFound() {
	_, err := suite.archive.Get(context.Background(), 42)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderArchiveIntegrationTestSuite) TestDeleteOlderThan_RemovesOnlyOldRecords() {
	ctx := context.Background()
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.archive.Save(ctx,
		suite.archivedOrder(1, cutoff.Add(-48*time.Hour))))
	suite.Require().NoError(suite.archive.Save(ctx,
		suite.archivedOrder(2, cutoff.Add(-time.Hour))))
	suite.Require().NoError(suite.archive.Save(ctx,
		suite.archivedOrder(3, cutoff.Add(time.Hour))))

	deleted, err := suite.archive.DeleteOlderThan(ctx, cutoff)

	suite.Require().NoError(err)
	suite.Equal(int64(2), deleted)

	_, err = suite.archive.Get(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	record, err := suite.archive.Get(ctx, 3)
	suite.Require().NoError(err)
	suite.Equal(int64(3), record.OrderID)
}

func (suite *OrderArchiveIntegrationTestSuite) TestDeleteOlderThan_EmptyTable() {
	deleted, err := suite.archive.DeleteOlderThan(context.Background(), time.Now())

	suite.Require().NoError(err)
	suite.Zero(deleted)
}

func TestOrderArchiveIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderArchiveIntegrationTestSuite))
}
