package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID    string             `spanner:"product_id"`
	Name         string             `spanner:"name"`
	Description  string             `spanner:"description"`
	CollectionID spanner.NullString `spanner:"collection_id"`
	Active       bool               `spanner:"active"`
	CreatedAt    time.Time          `spanner:"created_at"`
	UpdatedAt    time.Time          `spanner:"updated_at"`
}
