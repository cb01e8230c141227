package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ricemarket/internal/adapters/out/postgres/productrepo"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/product"
	"ricemarket/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers, with particular focus on the
// guarded stock adjustment.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(kernel.NewUUID(), "10.0")
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())
	suite.Equal("Koshihikari", retrieved.Name())
	suite.True(retrieved.PriceYenPerKg().Equal(decimal.NewFromInt(750)))
	suite.True(retrieved.IsAvailable())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsAvailability() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(kernel.NewUUID(), "10.0")
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	testProduct.MarkUnavailable()
	suite.Require().NoError(suite.repository.Update(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllAvailable_ExcludesUnavailable() {
	ctx := context.Background()

	available := suite.createTestProduct(kernel.NewUUID(), "10.0")
	unavailable := suite.createTestProduct(kernel.NewUUID(), "5.0")
	unavailable.MarkUnavailable()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, available))
	suite.Require().NoError(suite.repository.Add(ctx, unavailable))

	products, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Len(products, 1)
	suite.Equal(available.ID(), products[0].ID())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllByProducer_IncludesUnavailable() {
	ctx := context.Background()

	producerID := kernel.NewUUID()
	available := suite.createTestProduct(producerID, "10.0")
	unavailable := suite.createTestProduct(producerID, "5.0")
	unavailable.MarkUnavailable()
	foreign := suite.createTestProduct(kernel.NewUUID(), "3.0")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, available))
	suite.Require().NoError(suite.repository.Add(ctx, unavailable))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	products, err := suite.repository.GetAllByProducer(ctx, producerID)
	suite.Require().NoError(err)
	suite.Len(products, 2)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock_Deduction() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(kernel.NewUUID(), "10.0")
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.AdjustStock(ctx, testProduct.ID(), decimal.NewFromFloat(-2.5))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.StockKg().Equal(decimal.NewFromFloat(7.5)))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock_Restoration() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(kernel.NewUUID(), "7.5")
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.AdjustStock(ctx, testProduct.ID(), decimal.NewFromFloat(2.5))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.StockKg().Equal(decimal.NewFromFloat(10.0)))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock_OverdrawFailsAndLeavesStockUntouched() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(kernel.NewUUID(), "2.0")
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.AdjustStock(ctx, testProduct.ID(), decimal.NewFromFloat(-2.5))
	suite.Require().ErrorIs(err, product.ErrInsufficientStock)

	var insufficientErr *product.InsufficientStockError
	suite.Require().ErrorAs(err, &insufficientErr)

	retrieved, getErr := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(getErr)
	suite.True(retrieved.StockKg().Equal(decimal.NewFromFloat(2.0)))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock_ExactStockDrainsToZero() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(kernel.NewUUID(), "2.0")
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.AdjustStock(ctx, testProduct.ID(), decimal.NewFromFloat(-2.0))
	suite.Require().NoError(err)

	retrieved, getErr := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(getErr)
	suite.True(retrieved.StockKg().IsZero())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.AdjustStock(ctx, kernel.NewUUID(), decimal.NewFromFloat(-1.0))

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestProduct creates an available product priced at 750 yen per kg.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(producerID kernel.UUID, stockKg string) *product.Product {
	stock, err := decimal.NewFromString(stockKg)
	suite.Require().NoError(err)

	testProduct, err := product.NewProduct(kernel.NewUUID(), producerID,
		"Koshihikari", "Premium short-grain rice", decimal.NewFromInt(750), stock)
	suite.Require().NoError(err)

	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
