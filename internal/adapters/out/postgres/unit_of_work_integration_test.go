package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/personrepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.ServiceOrderDTO{},
		&orderrepo.ServiceItemDTO{},
		&personrepo.PersonDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE service_orders, service_order_items, persons").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// createTestOrder builds a valid service order with a couple of items.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(orderNumber int64, customerID kernel.UUID) *serviceorder.ServiceOrder {
	equipment, err := serviceorder.NewEquipment("refrigerator", "RF-300", "Acme", "SN-1", "110V", "shelves")
	suite.Require().NoError(err)

	order, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), orderNumber, customerID, equipment, time.Now().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	item, err := serviceorder.NewServiceItem(
		"diagnostics", 1, decimal.NewFromInt(80), decimal.Zero, decimal.Zero,
	)
	suite.Require().NoError(err)
	order.SetItems([]serviceorder.ServiceItem{item})

	return order
}

// seedPerson inserts a customer row directly, bypassing the domain layer.
func (suite *UnitOfWorkIntegrationTestSuite) seedPerson(name string, isActive bool) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.db.Create(&personrepo.PersonDTO{
		ID:       id.Bytes(),
		Name:     name,
		IsActive: isActive,
	}).Error
	suite.Require().NoError(err)
	return id
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.ServiceOrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.PersonRepository(), "First instance should provide person repository")
	suite.NotNil(uow2.ServiceOrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.PersonRepository(), "Second instance should provide person repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_ErrorsWithoutBegin verifies commit and rollback fail when
// no transaction is active.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ErrorsWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction, "Commit without begin should fail")

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction, "Rollback without begin should fail")
}

// TestUnitOfWork_CommitPersistsOrder verifies changes made within a committed
// transaction become visible to subsequent readers.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrder() {
	ctx := context.Background()
	customerID := suite.seedPerson("Alice Smith", true)
	order := suite.createTestOrder(1, customerID)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// A fresh unit of work without a transaction reads committed state.
	reader := suite.factory.Create()
	retrieved, err := reader.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), retrieved.OrderNumber())
	suite.Len(retrieved.Items(), 1)
}

// TestUnitOfWork_RollbackDiscardsOrder verifies changes made within a rolled
// back transaction leave no trace in the database.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrder() {
	ctx := context.Background()
	customerID := suite.seedPerson("Bob Jones", true)
	order := suite.createTestOrder(2, customerID)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	reader := suite.factory.Create()
	_, err = reader.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Rolled back order should not exist")

	var itemCount int64
	err = suite.db.Model(&orderrepo.ServiceItemDTO{}).Count(&itemCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(0), itemCount, "Rolled back items should not exist")
}

// TestUnitOfWork_MultipleRepositoriesShareTransaction verifies the person
// lookup and the order write observe the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultipleRepositoriesShareTransaction() {
	ctx := context.Background()
	customerID := suite.seedPerson("Carol White", true)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	customer, err := uow.PersonRepository().Get(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(customer.IsActive())

	order := suite.createTestOrder(3, customer.ID())
	err = uow.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	reader := suite.factory.Create()
	retrieved, err := reader.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.CustomerID().IsEqual(customerID))
}

// TestUnitOfWork_IsolationBetweenInstances verifies uncommitted changes in one
// unit of work are invisible to another.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IsolationBetweenInstances() {
	ctx := context.Background()
	customerID := suite.seedPerson("Dana Black", true)
	order := suite.createTestOrder(4, customerID)

	uow1 := suite.factory.Create()
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)

	// Second unit of work must not see the uncommitted order.
	uow2 := suite.factory.Create()
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	_, err = uow2.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Uncommitted order should be invisible")

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// After commit the order is visible everywhere.
	reader := suite.factory.Create()
	_, err = reader.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
}

// TestUnitOfWork_WithoutTransaction verifies repository operations work in
// auto-commit mode when no transaction was started.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	customerID := suite.seedPerson("Eve Green", true)
	order := suite.createTestOrder(5, customerID)

	uow := suite.factory.Create()

	// No Begin: the repository uses the main connection directly.
	err := uow.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)

	retrieved, err := uow.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(order.ID()))
}

// TestUnitOfWork_OrderWorkflow exercises a realistic flow: open the order,
// approve it and record payment progress, all through units of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWorkflow() {
	ctx := context.Background()
	customerID := suite.seedPerson("Frank Brown", true)
	order := suite.createTestOrder(6, customerID)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Approve in a second unit of work.
	uow2 := suite.factory.Create()
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	stored, err := uow2.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)

	err = stored.ChangeStatus(serviceorder.StatusApproved, time.Now().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	err = stored.ChangeFinancialStatus(serviceorder.FinancialPartiallyPaid)
	suite.Require().NoError(err)

	err = uow2.ServiceOrderRepository().Update(ctx, stored)
	suite.Require().NoError(err)
	err = uow2.Commit(ctx)
	suite.Require().NoError(err)

	reader := suite.factory.Create()
	final, err := reader.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(serviceorder.StatusApproved, final.Status())
	suite.Equal(serviceorder.FinancialPartiallyPaid, final.Financial())
	suite.NotNil(final.ApprovalDate())
}

// TestUnitOfWork_RollbackAfterFailedUpdate verifies a failed business step
// inside a transaction leaves earlier steps unapplied after rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAfterFailedUpdate() {
	ctx := context.Background()
	customerID := suite.seedPerson("Grace Grey", true)
	order := suite.createTestOrder(7, customerID)

	setup := suite.factory.Create()
	err := setup.Begin(ctx)
	suite.Require().NoError(err)
	err = setup.ServiceOrderRepository().Add(ctx, order)
	suite.Require().NoError(err)
	err = setup.Commit(ctx)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	stored, err := uow.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	stored.SetNotes("compressor replaced")
	err = uow.ServiceOrderRepository().Update(ctx, stored)
	suite.Require().NoError(err)

	// The illegal transition fails; the whole unit of work rolls back.
	err = stored.ChangeStatus(serviceorder.StatusDelivered, time.Now())
	suite.Require().Error(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	reader := suite.factory.Create()
	final, err := reader.ServiceOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal("", final.Notes(), "Rolled back note should not persist")
	suite.Equal(serviceorder.StatusToConfirm, final.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
