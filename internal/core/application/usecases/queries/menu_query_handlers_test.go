package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MenuQueryHandlersTestSuite exercises the catalog read side against a real
// PostgreSQL instance.
type MenuQueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	menuRepo  *menurepo.GormMenuItemRepository
}

func (suite *MenuQueryHandlersTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&menurepo.MenuItemDTO{})
	suite.Require().NoError(err)

	suite.menuRepo = menurepo.NewGormMenuItemRepository(db, mockAggregateTracker{})
}

func (suite *MenuQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuQueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)
}

func (suite *MenuQueryHandlersTestSuite) TestGetAllMenuItems_EmptyCatalog_ReturnsEmptySlice() {
	handler := queries.NewGetAllMenuItemsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllMenuItemsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *MenuQueryHandlersTestSuite) TestGetAllMenuItems_ReturnsSortedByName() {
	ctx := context.Background()

	suite.seedItem("Tiramisu", "Dessert", 6.00)
	suite.seedItem("Margherita", "Pizza", 9.50)
	suite.seedItem("Lasagna", "Mains", 12.00)

	handler := queries.NewGetAllMenuItemsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetAllMenuItemsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Lasagna", result[0].Name)
	suite.Equal("Margherita", result[1].Name)
	suite.Equal("Tiramisu", result[2].Name)
}

func (suite *MenuQueryHandlersTestSuite) TestGetMenuItemByID_ExistingItem_ReturnsAllFields() {
	ctx := context.Background()
	seeded := suite.seedItem("Margherita", "Pizza", 9.50)

	handler := queries.NewGetMenuItemByIDQueryHandler(suite.db)
	query, err := queries.NewGetMenuItemByIDQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(seeded.ID()))
	suite.Equal("Margherita", result.Name)
	suite.Equal("Pizza", result.Category)
	suite.True(result.Price.Equal(decimal.NewFromFloat(9.50)))
}

func (suite *MenuQueryHandlersTestSuite) TestGetMenuItemByID_NonExistentItem_ReturnsNotFoundError() {
	handler := queries.NewGetMenuItemByIDQueryHandler(suite.db)
	query, err := queries.NewGetMenuItemByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuQueryHandlersTestSuite) TestGetMenuItemsByCategory_FiltersExactCategory() {
	ctx := context.Background()

	suite.seedItem("Margherita", "Pizza", 9.50)
	suite.seedItem("Diavola", "Pizza", 11.00)
	suite.seedItem("Tiramisu", "Dessert", 6.00)

	handler := queries.NewGetMenuItemsByCategoryQueryHandler(suite.db)
	query, err := queries.NewGetMenuItemsByCategoryQuery("Pizza")
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, r := range result {
		suite.Equal("Pizza", r.Category)
	}
}

func (suite *MenuQueryHandlersTestSuite) TestGetMenuItemsByCategory_UnknownCategory_ReturnsEmptySlice() {
	suite.seedItem("Margherita", "Pizza", 9.50)

	handler := queries.NewGetMenuItemsByCategoryQueryHandler(suite.db)
	query, err := queries.NewGetMenuItemsByCategoryQuery("Sushi")
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *MenuQueryHandlersTestSuite) seedItem(name, category string, price float64) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, "", decimal.NewFromFloat(price), category, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.Add(context.Background(), item))
	return item
}

func TestMenuQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(MenuQueryHandlersTestSuite))
}
