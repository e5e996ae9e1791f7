package entity

import "github.com/google/uuid"

// Customer is a billed party. Customers are read-only in this service.
type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

// CustomerOption is the minimal projection used to populate choice widgets.
type CustomerOption struct {
	ID   uuid.UUID
	Name string
}
