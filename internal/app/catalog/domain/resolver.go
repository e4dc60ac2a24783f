package domain

import (
	"time"

	"go.uber.org/zap"
)

// InEffect filters the raw discount set down to the rules that apply at
// the given instant. Malformed records are dropped with a warning; a bad
// rule never takes the whole resolution pass down.
func InEffect(discounts []Discount, now time.Time, log *zap.Logger) []Discount {
	effective := make([]Discount, 0, len(discounts))
	for _, d := range discounts {
		if !d.InEffectAt(now) {
			continue
		}
		if !d.WellFormed() {
			if log != nil {
				log.Warn("skipping malformed discount",
					zap.String("discount_id", d.ID),
					zap.String("value_type", string(d.ValueType)),
					zap.Float64("value", d.Value),
				)
			}
			continue
		}
		effective = append(effective, d)
	}
	return effective
}

// ResolveDiscount picks the single discount that applies to a product from
// the in-effect set. When several rules match, the most specific target
// kind wins (variant > product > collection > all); within a tier the rule
// with the most recent start wins, and equal starts fall back to discount
// id ascending so resolution is a total order independent of input order.
func ResolveDiscount(p *Product, inEffect []Discount) (*Discount, bool) {
	var best *Discount
	for i := range inEffect {
		d := &inEffect[i]
		if !d.Matches(p) {
			continue
		}
		if best == nil || morePrecedent(d, best) {
			best = d
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

func morePrecedent(a, b *Discount) bool {
	if a.targetTier() != b.targetTier() {
		return a.targetTier() < b.targetTier()
	}
	if !a.StartsAt.Equal(b.StartsAt) {
		return a.StartsAt.After(b.StartsAt)
	}
	return a.ID < b.ID
}

// EffectivePrice computes the adjusted price for a base price under a
// discount. Percentage rules subtract value% of the base; fixed rules
// subtract the value outright. The result is floored at zero and a nil or
// malformed discount leaves the base price untouched, so the returned
// price always satisfies 0 <= effective <= base.
func EffectivePrice(basePrice *Money, discount *Discount) *Money {
	if discount == nil || !discount.WellFormed() {
		return basePrice.Copy()
	}

	var adjusted *Money
	switch discount.ValueType {
	case ValuePercentage:
		reduction := basePrice.MultiplyByRat(NewMoneyFromFloat64(discount.Value / 100).rat)
		adjusted = basePrice.Subtract(reduction)
	case ValueFixed:
		adjusted = basePrice.Subtract(NewMoneyFromFloat64(discount.Value))
	default:
		return basePrice.Copy()
	}

	if adjusted.IsNegative() {
		return Zero()
	}
	return adjusted
}
