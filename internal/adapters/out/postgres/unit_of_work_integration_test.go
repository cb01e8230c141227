package postgres_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "ricemarket/internal/adapters/out/postgres"
	"ricemarket/internal/adapters/out/postgres/notificationrepo"
	"ricemarket/internal/adapters/out/postgres/orderrepo"
	"ricemarket/internal/adapters/out/postgres/producerrepo"
	"ricemarket/internal/adapters/out/postgres/productrepo"
	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
	"ricemarket/internal/core/domain/model/order"
	"ricemarket/internal/core/domain/model/producer"
	"ricemarket/internal/core/domain/model/product"
	"ricemarket/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// and runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&producerrepo.ProducerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, producers, orders, order_items, notifications").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.ProducerRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.NotificationRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct(kernel.NewUUID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())
	suite.True(retrieved.StockKg().Equal(testProduct.StockKg()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProducer := createTestProducer()
	testProduct := createTestProduct(testProducer.ID())
	testOrder := createTestOrder(testProduct, testProducer.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProducerRepository().Add(ctx, testProducer)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingConfirmation, retrievedOrder.Status())
	suite.Len(retrievedOrder.Items(), 1)
	suite.True(retrievedOrder.TotalYen().Equal(testOrder.TotalYen()))

	retrievedProducer, err := newUow.ProducerRepository().Get(ctx, testProducer.ID())
	suite.Require().NoError(err)
	suite.Equal(testProducer.BusinessName(), retrievedProducer.BusinessName())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProducer := createTestProducer()
	testProduct := createTestProduct(testProducer.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProducerRepository().Add(ctx, testProducer)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	_, err = uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ProducerRepository().Get(ctx, testProducer.ID())
	suite.Require().Error(err, "Producer should not exist after rollback")

	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	product1 := createTestProduct(kernel.NewUUID())
	product2 := createTestProduct(kernel.NewUUID())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ProductRepository().Add(ctx, product1)
	suite.Require().NoError(err)

	err = uow2.ProductRepository().Add(ctx, product2)
	suite.Require().NoError(err)

	_, err = uow1.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "UOW1 should see product1")

	_, err = uow1.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "UOW1 should not see product2")

	_, err = uow2.ProductRepository().Get(ctx, product2.ID())
	suite.Require().NoError(err, "UOW2 should see product2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "Product1 should persist after commit")

	_, err = newUow.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "Product2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct(kernel.NewUUID())

	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())
}

// TestUnitOfWork_OrderConfirmationWorkflow drives the full confirmation flow:
// the producer confirms a pending order, stock is deducted for every line, the
// consumer is notified, and everything commits together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderConfirmationWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProducer := createTestProducer()
	testProduct := createTestProduct(testProducer.ID())
	testOrder := createTestOrder(testProduct, testProducer.ID())

	err := uow.ProducerRepository().Add(ctx, testProducer)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.OrderRepository().GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)

	actor, err := account.NewProducerActor(testProducer.UserID(), testProducer.ID())
	suite.Require().NoError(err)

	err = locked.ChangeStatus(actor, order.ConfirmedByProducer)
	suite.Require().NoError(err)

	for _, item := range locked.Items() {
		err = uow.ProductRepository().AdjustStock(ctx, *item.ProductID(), item.QuantityKg().Neg())
		suite.Require().NoError(err)
	}

	err = uow.OrderRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	note, err := notification.NewNotification(kernel.NewUUID(), locked.ConsumerID(),
		"Your order has been confirmed.", notification.TypeOrderUpdate, "")
	suite.Require().NoError(err)
	err = uow.NotificationRepository().Add(ctx, note)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ConfirmedByProducer, retrievedOrder.Status())

	retrievedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrievedProduct.StockKg().Equal(decimal.NewFromFloat(7.5)),
		"Stock should drop from 10.0 to 7.5 after confirming a 2.5 kg order")

	notes, err := newUow.NotificationRepository().GetAllForRecipient(ctx, testOrder.ConsumerID())
	suite.Require().NoError(err)
	suite.Len(notes, 1)
	suite.False(notes[0].IsRead())
}

// TestUnitOfWork_InsufficientStockRollsBackWorkflow verifies that an
// overdrawing deduction fails and the rollback leaves order and stock
// untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_InsufficientStockRollsBackWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProducer := createTestProducer()
	testProduct := createTestProduct(testProducer.ID())

	err := uow.ProducerRepository().Add(ctx, testProducer)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().AdjustStock(ctx, testProduct.ID(), decimal.NewFromFloat(-5.0))
	suite.Require().NoError(err)

	err = uow.ProductRepository().AdjustStock(ctx, testProduct.ID(), decimal.NewFromFloat(-6.0))
	suite.Require().ErrorIs(err, product.ErrInsufficientStock,
		"Second deduction should overdraw the remaining 5.0 kg")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrievedProduct.StockKg().Equal(decimal.NewFromFloat(10.0)),
		"Stock should be unchanged after rollback")
}

// TestNotificationRepository_MarkReadTouchesUpdatedAt verifies that marking a
// notification read persists the read flag and advances the update timestamp.
func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationRepository_MarkReadTouchesUpdatedAt() {
	ctx := context.Background()
	uow := suite.factory.Create()

	note, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
		"Your order has been confirmed.", notification.TypeOrderUpdate, "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, note))

	var created notificationrepo.NotificationDTO
	suite.Require().NoError(suite.db.First(&created, "id = ?", note.ID().Bytes()).Error)
	suite.False(created.CreatedAt.IsZero())
	suite.False(created.UpdatedAt.IsZero())

	note.MarkRead()
	suite.Require().NoError(uow.NotificationRepository().Update(ctx, note))

	var updated notificationrepo.NotificationDTO
	suite.Require().NoError(suite.db.First(&updated, "id = ?", note.ID().Bytes()).Error)
	suite.True(updated.IsRead)
	suite.False(updated.UpdatedAt.Before(created.UpdatedAt),
		"Marking read must touch the update timestamp")
}

// createTestProducer creates a valid producer for testing purposes.
func createTestProducer() *producer.Producer {
	testProducer, _ := producer.NewProducer(kernel.NewUUID(), kernel.NewUUID(), "Aso Highland Rice")
	return testProducer
}

// createTestProduct creates a valid product with 10.0 kg of stock.
func createTestProduct(producerID kernel.UUID) *product.Product {
	testProduct, _ := product.NewProduct(kernel.NewUUID(), producerID,
		"Koshihikari", "Premium short-grain rice",
		decimal.NewFromInt(750), decimal.NewFromFloat(10.0))
	return testProduct
}

// createTestOrder creates a pending order with a single 2.5 kg line.
func createTestOrder(p *product.Product, producerID kernel.UUID) *order.Order {
	item, _ := order.NewItem(p.ID(), p.Name(), p.PriceYenPerKg(), decimal.NewFromFloat(2.5))
	testOrder, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), producerID,
		[]order.Item{item}, "1-2-3 Chuo, Kumamoto")
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
