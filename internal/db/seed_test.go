package db_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/models"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {

	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}

	_ = testDB.Migrator().DropTable(&models.Customer{}, &models.Product{}, &models.Order{}, "order_products")

	err = testDB.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{})
	if err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}

	return testDB
}

func TestSeed(t *testing.T) {

	testDB := setupSeedTestDB(t)

	assert.NoError(t, db.Seed(testDB))

	var productCount, customerCount int64
	testDB.Model(&models.Product{}).Count(&productCount)
	testDB.Model(&models.Customer{}).Count(&customerCount)
	assert.Equal(t, int64(3), productCount)
	assert.Equal(t, int64(2), customerCount)

	var laptop models.Product
	testDB.Where("name = ?", "Laptop").First(&laptop)
	assert.True(t, decimal.RequireFromString("999.99").Equal(laptop.Price))
	assert.Equal(t, uint(10), laptop.Stock)

	var alice models.Customer
	testDB.Where("email = ?", "alice@example.com").First(&alice)
	assert.Equal(t, "+1234567890", alice.Phone)
}

func TestSeedIsIdempotent(t *testing.T) {

	testDB := setupSeedTestDB(t)

	assert.NoError(t, db.Seed(testDB))
	assert.NoError(t, db.Seed(testDB))

	var productCount, customerCount int64
	testDB.Model(&models.Product{}).Count(&productCount)
	testDB.Model(&models.Customer{}).Count(&customerCount)
	assert.Equal(t, int64(3), productCount)
	assert.Equal(t, int64(2), customerCount)
}
