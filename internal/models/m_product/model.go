package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
// The engine itself only reads; mutations exist for test fixtures and the
// external cataloging tools that own this table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.CollectionID,
			data.Active,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}
