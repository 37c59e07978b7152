package productcontroller

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name, category, description string, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Category:    category,
		Price:       decimal.NewFromInt(50),
		Description: description,
		Stock:       stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestSearchProducts(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "Whole Chicken", "Poultry", "Whole frozen broiler", 10)
	createProduct(t, db, "Tilapia 1kg", "Seafood", "Fresh-frozen tilapia", 10)
	createProduct(t, db, "Shrimp 500g", "Seafood", "Peeled frozen shrimp", 10)

	// Case-insensitive name match.
	matched, err := SearchProducts(db, "CHICKEN")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Whole Chicken", matched[0].Name)

	// Category label matches too.
	matched, err = SearchProducts(db, "seafood")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	// Description substring.
	matched, err = SearchProducts(db, "peeled")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Shrimp 500g", matched[0].Name)

	matched, err = SearchProducts(db, "caviar")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestSetStock(t *testing.T) {
	db := openTestDB(t)
	product := createProduct(t, db, "Whole Chicken", "Poultry", "", 10)

	updated, err := SetStock(db, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 3, stored.Stock)
}

func TestSetStockRejectsNegative(t *testing.T) {
	db := openTestDB(t)
	product := createProduct(t, db, "Whole Chicken", "Poultry", "", 10)

	_, err := SetStock(db, product.ID, -1)
	assert.ErrorIs(t, err, ErrNegativeStock)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 10, stored.Stock)
}

func TestSetStockUnknownProduct(t *testing.T) {
	db := openTestDB(t)

	_, err := SetStock(db, "nope", 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBuildStockReport(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "Plenty", "Poultry", "", 50)
	createProduct(t, db, "Low", "Poultry", "", 20)
	createProduct(t, db, "Gone", "Poultry", "", 0)

	report, err := BuildStockReport(db, 20)
	require.NoError(t, err)

	require.Len(t, report.InStock, 1)
	assert.Equal(t, "Plenty", report.InStock[0].Name)
	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "Low", report.LowStock[0].Name)
	require.Len(t, report.OutOfStock, 1)
	assert.Equal(t, "Gone", report.OutOfStock[0].Name)
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	db := openTestDB(t)

	category := models.Category{Name: "Seafood", Description: "Frozen fish"}
	require.NoError(t, db.Create(&category).Error)

	createProduct(t, db, "Tilapia 1kg", "Seafood", "", 10)
	createProduct(t, db, "Shrimp 500g", "Seafood", "", 10)

	err := DeleteCategory(db, category.ID)
	var inUse *CategoryInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "Seafood", inUse.CategoryName)
	assert.Equal(t, int64(2), inUse.ProductCount)

	// Category still there.
	var stored models.Category
	require.NoError(t, db.First(&stored, "id = ?", category.ID).Error)
}

func TestDeleteCategoryUnreferenced(t *testing.T) {
	db := openTestDB(t)

	category := models.Category{Name: "Desserts", Description: "Frozen desserts"}
	require.NoError(t, db.Create(&category).Error)

	require.NoError(t, DeleteCategory(db, category.ID))

	err := db.First(&models.Category{}, "id = ?", category.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteCategoryUnknown(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, DeleteCategory(db, "nope"), gorm.ErrRecordNotFound)
}
