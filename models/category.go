package models

// Category represents a product category.
// It includes a human-readable name and a free-form description.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "category"
}
