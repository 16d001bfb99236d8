package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the inventory.
// It includes pricing, stock quantity, and references to the category it
// belongs to and the supplier providing it. The foreign-key columns are
// authoritative; the associations exist only so reads can surface the
// referenced records.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	SKU         string          `gorm:"column:sku"`
	Unit        string
	Active      bool
	CategoryID  uint     `gorm:"not null"`
	SupplierID  uint     `gorm:"not null"`
	Category    Category `gorm:"foreignKey:CategoryID"`
	Supplier    Supplier `gorm:"foreignKey:SupplierID"`
}

func (p *Product) TableName() string {
	return "product"
}
