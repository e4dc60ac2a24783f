package m_discount

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the discounts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a discount.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.DiscountID,
			data.Status,
			data.StartsAt,
			data.EndsAt,
			data.AppliesTo,
			data.AppliesIDs,
			data.ValueType,
			data.Value,
			spanner.CommitTimestamp,
		},
	)
}
