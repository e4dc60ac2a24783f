package domain

// ListItem is a product prepared for list display: the product joined with
// its default variant and the per-request annotations the storefront
// renders (prices, stock, badges). Products with no eligible variant never
// become list items.
type ListItem struct {
	Product        Product
	DefaultVariant Variant
	BasePrice      *Money
	EffectivePrice *Money
	InStock        bool
	TopSelling     bool
	TopDeal        bool
}

// NewListItem builds a list item for a product, returning false when the
// product has no eligible variant. The effective price starts at the base
// price; discount annotation happens later in the pipeline.
func NewListItem(p Product) (ListItem, bool) {
	variant, ok := p.DefaultVariant()
	if !ok {
		return ListItem{}, false
	}
	return ListItem{
		Product:        p,
		DefaultVariant: variant,
		BasePrice:      variant.Price.Copy(),
		EffectivePrice: variant.Price.Copy(),
		InStock:        variant.InStock(),
	}, true
}
