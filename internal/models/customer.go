package models

type Customer struct {

	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"not null" json:"name"`
	Email  string  `gorm:"uniqueIndex;not null" json:"email"` // stored trimmed + lowercased
	Phone  string  `json:"phone,omitempty"`
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
