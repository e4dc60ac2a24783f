package m_orderline

import "time"

// Data represents the database model for the order_lines table.
type Data struct {
	OrderID    string    `spanner:"order_id"`
	LineNumber int64     `spanner:"line_number"`
	ProductID  string    `spanner:"product_id"`
	Quantity   int64     `spanner:"quantity"`
	OrderedAt  time.Time `spanner:"ordered_at"`
}
