package models

import "github.com/shopspring/decimal"

type Product struct {

	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock uint            `gorm:"not null;default:0" json:"stock"`
}
