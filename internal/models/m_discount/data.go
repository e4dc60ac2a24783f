package m_discount

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the discounts table. ValueType
// and Value are nullable because the discount store has shipped malformed
// rows before; the engine treats those as "no discount" instead of
// rejecting the whole result.
type Data struct {
	DiscountID string              `spanner:"discount_id"`
	Status     string              `spanner:"status"`
	StartsAt   time.Time           `spanner:"starts_at"`
	EndsAt     spanner.NullTime    `spanner:"ends_at"`
	AppliesTo  string              `spanner:"applies_to"`
	AppliesIDs []string            `spanner:"applies_ids"`
	ValueType  spanner.NullString  `spanner:"value_type"`
	Value      spanner.NullFloat64 `spanner:"value"`
	CreatedAt  time.Time           `spanner:"created_at"`
}
