package model

import "github.com/google/uuid"

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null"`
	ImageURL string    `gorm:"column:image_url;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
