package m_variant

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the variants table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a variant.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.VariantID,
			data.ProductID,
			data.Title,
			data.Kind,
			data.Magnitude,
			data.Unit,
			data.PriceNumerator,
			data.PriceDenominator,
			data.Stock,
			data.ImageURL,
			data.Active,
			data.Position,
		},
	)
}
