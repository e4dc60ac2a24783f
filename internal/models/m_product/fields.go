package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID    = "product_id"
	Name         = "name"
	Description  = "description"
	CollectionID = "collection_id"
	Active       = "active"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)

// Columns lists every column in read order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	CollectionID,
	Active,
	CreatedAt,
	UpdatedAt,
}
