package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is one order/product line item as stored in the products table.
// Every row is an ordered line item, so in this domain product counts and
// order counts are the same number by construction.
type Product struct {
	Key           uuid.UUID `db:"key" json:"key"`
	ID            *int64    `db:"id" json:"id,omitempty"`
	ProductName   string    `db:"product_name" json:"product_name"`
	Category      string    `db:"category" json:"category"`
	Quantity      int       `db:"quantity" json:"quantity"`
	UnitPrice     float64   `db:"unit_price" json:"unit_price"`
	TotalPrice    float64   `db:"total_price" json:"total_price"`
	DateOrdered   string    `db:"date_ordered" json:"date_ordered"`
	Supplier      string    `db:"supplier" json:"supplier"`
	CustomerName  string    `db:"customer_name" json:"customer_name"`
	CustomerEmail string    `db:"customer_email" json:"customer_email"`
	About         string    `db:"about" json:"about"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// User represents an account that can sign in to the dashboard.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	Country      string    `db:"country" json:"country"`
	Phone        string    `db:"phone" json:"phone"`
	About        string    `db:"about" json:"about"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
