package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"index;not null" json:"customer_id"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `gorm:"many2many:order_products;" json:"products"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	OrderDate   time.Time       `gorm:"not null" json:"order_date"`
}

// RecalcTotal recomputes the cached total from the currently associated
// products and persists it. Totals are never recomputed implicitly: a later
// product price change leaves existing orders untouched until this is called
// again.
func (o *Order) RecalcTotal(tx *gorm.DB) error {

	var products []Product
	if err := tx.Model(o).Association("Products").Find(&products); err != nil {
		return err
	}

	total := decimal.NewFromInt(0)
	for _, p := range products {
		total = total.Add(p.Price)
	}

	o.TotalAmount = total

	return tx.Model(o).Update("total_amount", total).Error
}
