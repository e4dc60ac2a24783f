package domain

import "time"

// DiscountStatus is the lifecycle status assigned by the discount store.
type DiscountStatus string

const (
	DiscountStatusDraft   DiscountStatus = "draft"
	DiscountStatusActive  DiscountStatus = "active"
	DiscountStatusExpired DiscountStatus = "expired"
)

// AppliesTo names the kind of catalog entity a discount targets.
type AppliesTo string

const (
	AppliesToAll         AppliesTo = "all"
	AppliesToProducts    AppliesTo = "products"
	AppliesToCollections AppliesTo = "collections"
	AppliesToVariants    AppliesTo = "variants"
)

// ValueType selects the discount formula.
type ValueType string

const (
	ValuePercentage ValueType = "percentage"
	ValueFixed      ValueType = "fixed"
)

// Discount is a promotional price adjustment rule owned by the external
// discount store.
type Discount struct {
	ID         string
	Status     DiscountStatus
	StartsAt   time.Time
	EndsAt     *time.Time
	AppliesTo  AppliesTo
	AppliesIDs []string
	ValueType  ValueType
	Value      float64
}

// InEffectAt reports whether the discount applies at the given instant:
// status must be active, the start must have passed, and the end (when
// set) must not have. Both bounds are inclusive.
func (d *Discount) InEffectAt(t time.Time) bool {
	if d.Status != DiscountStatusActive {
		return false
	}
	if t.Before(d.StartsAt) {
		return false
	}
	if d.EndsAt != nil && d.EndsAt.Before(t) {
		return false
	}
	return true
}

// WellFormed reports whether the discount record carries a usable value.
// Records failing this check are treated as "no discount" rather than
// aborting the resolution pass.
func (d *Discount) WellFormed() bool {
	if d.Value < 0 {
		return false
	}
	switch d.ValueType {
	case ValuePercentage, ValueFixed:
		return true
	}
	return false
}

// Matches reports whether the discount's target set contains the product.
// An "all" discount matches every product; "products" matches by product
// id; "collections" matches by the product's collection (never matching an
// uncollected product); "variants" matches when any eligible variant id is
// targeted.
func (d *Discount) Matches(p *Product) bool {
	switch d.AppliesTo {
	case AppliesToAll:
		return true
	case AppliesToProducts:
		return containsID(d.AppliesIDs, p.ID)
	case AppliesToCollections:
		if p.Collection == nil {
			return false
		}
		return containsID(d.AppliesIDs, p.Collection.ID)
	case AppliesToVariants:
		for _, id := range p.EligibleVariantIDs() {
			if containsID(d.AppliesIDs, id) {
				return true
			}
		}
		return false
	}
	return false
}

// targetTier orders applies_to kinds from most to least specific for
// precedence resolution.
func (d *Discount) targetTier() int {
	switch d.AppliesTo {
	case AppliesToVariants:
		return 0
	case AppliesToProducts:
		return 1
	case AppliesToCollections:
		return 2
	case AppliesToAll:
		return 3
	}
	return 4
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
