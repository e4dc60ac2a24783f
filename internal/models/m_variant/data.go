package m_variant

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the variants table.
type Data struct {
	VariantID        string              `spanner:"variant_id"`
	ProductID        string              `spanner:"product_id"`
	Title            string              `spanner:"title"`
	Kind             string              `spanner:"kind"`
	Magnitude        spanner.NullFloat64 `spanner:"magnitude"`
	Unit             spanner.NullString  `spanner:"unit"`
	PriceNumerator   int64               `spanner:"price_numerator"`
	PriceDenominator int64               `spanner:"price_denominator"`
	Stock            int64               `spanner:"stock"`
	ImageURL         spanner.NullString  `spanner:"image_url"`
	Active           bool                `spanner:"active"`
	Position         int64               `spanner:"position"`
}
