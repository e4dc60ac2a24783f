package m_collection

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the collections table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a collection.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.CollectionID,
			data.Title,
		},
	)
}
