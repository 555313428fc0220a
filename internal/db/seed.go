package db

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/models"
)

// Seed inserts a fixed set of sample products and customers. FirstOrCreate
// keys on name (products) and email (customers), so re-running against an
// already seeded database creates nothing.
func Seed(gdb *gorm.DB) error {

	products := []models.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10},
		{Name: "Mouse", Price: decimal.RequireFromString("25.50"), Stock: 100},
		{Name: "Keyboard", Price: decimal.RequireFromString("45.00"), Stock: 50},
	}

	for _, p := range products {

		var existing models.Product

		result := gdb.Where(models.Product{Name: p.Name}).Attrs(p).FirstOrCreate(&existing)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			log.Printf("Created product: %s ($%s)\n", existing.Name, existing.Price.StringFixed(2))
		}
	}

	customers := []models.Customer{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
	}

	for _, c := range customers {

		var existing models.Customer

		result := gdb.Where(models.Customer{Email: c.Email}).Attrs(c).FirstOrCreate(&existing)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			log.Printf("Created customer: %s <%s>\n", existing.Name, existing.Email)
		}
	}

	return nil
}
