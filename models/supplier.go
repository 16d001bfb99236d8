package models

// Supplier represents a company providing products.
// It includes the business name plus contact details for the supplier's
// representative.
type Supplier struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	ContactName string `gorm:"not null"`
	Email       string `gorm:"column:contact_email;not null"`
	Phone       string `gorm:"column:contact_phone;not null"`
	Address     string `gorm:"not null"`
}

func (s *Supplier) TableName() string {
	return "supplier"
}
