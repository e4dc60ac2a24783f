package m_variant

// Field name constants for the variants table.
const (
	TableName = "variants"

	VariantID        = "variant_id"
	ProductID        = "product_id"
	Title            = "title"
	Kind             = "kind"
	Magnitude        = "magnitude"
	Unit             = "unit"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	Stock            = "stock"
	ImageURL         = "image_url"
	Active           = "active"
	Position         = "position"
)

// Columns lists every column in read order. Position preserves the
// storefront's variant list order; the first eligible variant in that
// order is the default variant.
var Columns = []string{
	VariantID,
	ProductID,
	Title,
	Kind,
	Magnitude,
	Unit,
	PriceNumerator,
	PriceDenominator,
	Stock,
	ImageURL,
	Active,
	Position,
}
