package m_orderline

// Field name constants for the order_lines table.
const (
	TableName = "order_lines"

	OrderID    = "order_id"
	LineNumber = "line_number"
	ProductID  = "product_id"
	Quantity   = "quantity"
	OrderedAt  = "ordered_at"
)

// Columns lists every column in read order.
var Columns = []string{
	OrderID,
	LineNumber,
	ProductID,
	Quantity,
	OrderedAt,
}
