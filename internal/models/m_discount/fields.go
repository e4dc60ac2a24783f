package m_discount

// Field name constants for the discounts table.
const (
	TableName = "discounts"

	DiscountID = "discount_id"
	Status     = "status"
	StartsAt   = "starts_at"
	EndsAt     = "ends_at"
	AppliesTo  = "applies_to"
	AppliesIDs = "applies_ids"
	ValueType  = "value_type"
	Value      = "value"
	CreatedAt  = "created_at"
)

// Columns lists every column in read order.
var Columns = []string{
	DiscountID,
	Status,
	StartsAt,
	EndsAt,
	AppliesTo,
	AppliesIDs,
	ValueType,
	Value,
	CreatedAt,
}
