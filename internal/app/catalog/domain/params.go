package domain

// Availability is a stock-level facet option.
type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

// SpecialTag is a badge-based facet option.
type SpecialTag string

const (
	TagTopSelling SpecialTag = "top-selling"
	TagTopDeal    SpecialTag = "top-deal"
)

// SortKey selects the result ordering.
type SortKey string

const (
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortInStockFirst SortKey = "in-stock-first"
)

// Valid reports whether the sort key is one of the supported orderings.
func (k SortKey) Valid() bool {
	switch k {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortInStockFirst:
		return true
	}
	return false
}

// PriceBucket is an inclusive price range over the default variant's base
// price. The bucket table itself is owned by the UI layer; the engine only
// sees the buckets the shopper selected. A nil Max means unbounded above.
type PriceBucket struct {
	ID  string
	Min *Money
	Max *Money
}

// Contains reports whether the price falls inside the bucket.
func (b *PriceBucket) Contains(price *Money) bool {
	if b.Min != nil && price.LessThan(b.Min) {
		return false
	}
	if b.Max != nil && price.GreaterThan(b.Max) {
		return false
	}
	return true
}

// QueryParams carries every shopper-controlled input to a catalog query.
// The engine holds no state between calls; the UI layer owns persisting
// the last-used params (in the URL).
type QueryParams struct {
	Text         string
	Availability []Availability
	Buckets      []PriceBucket
	Tags         []SpecialTag
	Sort         SortKey
	CollectionID string
	Page         int
	PageSize     int
}
