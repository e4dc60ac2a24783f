package domain

// Product, Variant and Collection form the catalog snapshot the engine
// queries. The snapshot is owned by the external catalog store and is
// read-only for the lifetime of a request, so these are plain value types
// rather than guarded aggregates.

// Collection is a single-level category grouping. A product belongs to at
// most one collection.
type Collection struct {
	ID    string
	Title string
}

// Variant is a purchasable SKU of a product: a specific size, strength or
// packaging of the same item.
type Variant struct {
	ID        string
	Title     string
	Kind      string
	Magnitude *float64
	Unit      string
	Price     *Money
	Stock     int64
	ImageRef  string
	Active    bool
}

// InStock reports whether the variant has units available.
func (v *Variant) InStock() bool {
	return v.Stock > 0
}

// Product is a catalog entry with an ordered list of variants.
type Product struct {
	ID          string
	Name        string
	Description string
	Active      bool
	Collection  *Collection
	Variants    []Variant
}

// EligibleVariants returns the active variants of an active product, in
// list order. An inactive product has no eligible variants.
func (p *Product) EligibleVariants() []Variant {
	if !p.Active {
		return nil
	}
	eligible := make([]Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.Active {
			eligible = append(eligible, v)
		}
	}
	return eligible
}

// DefaultVariant returns the first eligible variant in list order. The
// first-in-list convention is deliberate: it is what the storefront shows
// on product cards, regardless of stock level. The second return is false
// when the product has no eligible variant at all.
func (p *Product) DefaultVariant() (Variant, bool) {
	eligible := p.EligibleVariants()
	if len(eligible) == 0 {
		return Variant{}, false
	}
	return eligible[0], true
}

// EligibleVariantIDs returns the ids of all eligible variants.
func (p *Product) EligibleVariantIDs() []string {
	eligible := p.EligibleVariants()
	ids := make([]string, 0, len(eligible))
	for _, v := range eligible {
		ids = append(ids, v.ID)
	}
	return ids
}

// CollectionID returns the id of the product's collection, or "" when the
// product is uncollected.
func (p *Product) CollectionID() string {
	if p.Collection == nil {
		return ""
	}
	return p.Collection.ID
}
