package m_orderline

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the order_lines table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order line.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.OrderID,
			data.LineNumber,
			data.ProductID,
			data.Quantity,
			data.OrderedAt,
		},
	)
}
