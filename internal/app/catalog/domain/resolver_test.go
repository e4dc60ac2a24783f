package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func activeDiscount(id string, appliesTo AppliesTo, appliesIDs []string, startsAt time.Time) Discount {
	return Discount{
		ID:         id,
		Status:     DiscountStatusActive,
		StartsAt:   startsAt,
		AppliesTo:  appliesTo,
		AppliesIDs: appliesIDs,
		ValueType:  ValuePercentage,
		Value:      10,
	}
}

func TestInEffect(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	earlier := now.Add(-24 * time.Hour)

	t.Run("filters window, status and malformed records", func(t *testing.T) {
		discounts := []Discount{
			activeDiscount("keep", AppliesToAll, nil, earlier),
			{ID: "future", Status: DiscountStatusActive, StartsAt: now.Add(time.Hour), AppliesTo: AppliesToAll, ValueType: ValuePercentage, Value: 5},
			{ID: "draft", Status: DiscountStatusDraft, StartsAt: earlier, AppliesTo: AppliesToAll, ValueType: ValuePercentage, Value: 5},
			{ID: "malformed", Status: DiscountStatusActive, StartsAt: earlier, AppliesTo: AppliesToAll, ValueType: ValueType("bogus"), Value: 5},
			{ID: "negative", Status: DiscountStatusActive, StartsAt: earlier, AppliesTo: AppliesToAll, ValueType: ValueFixed, Value: -3},
		}

		effective := InEffect(discounts, now, zap.NewNop())
		require.Len(t, effective, 1)
		assert.Equal(t, "keep", effective[0].ID)
	})

	t.Run("nil logger is tolerated", func(t *testing.T) {
		discounts := []Discount{
			{ID: "malformed", Status: DiscountStatusActive, StartsAt: earlier, AppliesTo: AppliesToAll, Value: -1},
		}
		assert.Empty(t, InEffect(discounts, now, nil))
	})
}

func TestResolveDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	product := Product{
		ID:         "prod-1",
		Active:     true,
		Collection: &Collection{ID: "col-1"},
		Variants:   []Variant{{ID: "var-1", Active: true, Price: money(t, 10)}},
	}

	t.Run("more specific target tier wins", func(t *testing.T) {
		inEffect := []Discount{
			activeDiscount("all", AppliesToAll, nil, now),
			activeDiscount("coll", AppliesToCollections, []string{"col-1"}, now),
			activeDiscount("prod", AppliesToProducts, []string{"prod-1"}, now),
			activeDiscount("vart", AppliesToVariants, []string{"var-1"}, now.Add(-time.Hour)),
		}

		d, ok := ResolveDiscount(&product, inEffect)
		require.True(t, ok)
		assert.Equal(t, "vart", d.ID)
	})

	t.Run("within a tier the most recent start wins", func(t *testing.T) {
		inEffect := []Discount{
			activeDiscount("older", AppliesToProducts, []string{"prod-1"}, now.Add(-48*time.Hour)),
			activeDiscount("newer", AppliesToProducts, []string{"prod-1"}, now.Add(-time.Hour)),
		}

		d, ok := ResolveDiscount(&product, inEffect)
		require.True(t, ok)
		assert.Equal(t, "newer", d.ID)
	})

	t.Run("equal starts fall back to id ascending", func(t *testing.T) {
		inEffect := []Discount{
			activeDiscount("b-disc", AppliesToProducts, []string{"prod-1"}, now),
			activeDiscount("a-disc", AppliesToProducts, []string{"prod-1"}, now),
		}

		d, ok := ResolveDiscount(&product, inEffect)
		require.True(t, ok)
		assert.Equal(t, "a-disc", d.ID)
	})

	t.Run("resolution is independent of input order", func(t *testing.T) {
		forward := []Discount{
			activeDiscount("all", AppliesToAll, nil, now),
			activeDiscount("prod", AppliesToProducts, []string{"prod-1"}, now),
		}
		reversed := []Discount{forward[1], forward[0]}

		d1, _ := ResolveDiscount(&product, forward)
		d2, _ := ResolveDiscount(&product, reversed)
		assert.Equal(t, d1.ID, d2.ID)
	})

	t.Run("no match resolves to none", func(t *testing.T) {
		inEffect := []Discount{
			activeDiscount("other", AppliesToProducts, []string{"prod-9"}, now),
		}

		_, ok := ResolveDiscount(&product, inEffect)
		assert.False(t, ok)
	})
}

func TestEffectivePrice(t *testing.T) {
	base := money(t, 1000)

	t.Run("percentage discount", func(t *testing.T) {
		d := Discount{ValueType: ValuePercentage, Value: 10}
		assert.Equal(t, "900.00", EffectivePrice(base, &d).String())
	})

	t.Run("fractional percentage", func(t *testing.T) {
		d := Discount{ValueType: ValuePercentage, Value: 12.5}
		assert.Equal(t, "875.00", EffectivePrice(base, &d).String())
	})

	t.Run("fixed discount", func(t *testing.T) {
		d := Discount{ValueType: ValueFixed, Value: 250}
		assert.Equal(t, "750.00", EffectivePrice(base, &d).String())
	})

	t.Run("fixed discount larger than price floors at zero", func(t *testing.T) {
		d := Discount{ValueType: ValueFixed, Value: 2000}
		assert.Equal(t, "0.00", EffectivePrice(base, &d).String())
	})

	t.Run("percentage above 100 floors at zero", func(t *testing.T) {
		d := Discount{ValueType: ValuePercentage, Value: 150}
		assert.Equal(t, "0.00", EffectivePrice(base, &d).String())
	})

	t.Run("nil discount returns base", func(t *testing.T) {
		assert.Equal(t, "1000.00", EffectivePrice(base, nil).String())
	})

	t.Run("malformed discount returns base", func(t *testing.T) {
		d := Discount{ValueType: ValuePercentage, Value: -10}
		assert.Equal(t, "1000.00", EffectivePrice(base, &d).String())
	})

	t.Run("never exceeds base and never goes negative", func(t *testing.T) {
		for _, d := range []Discount{
			{ValueType: ValuePercentage, Value: 0},
			{ValueType: ValuePercentage, Value: 55.5},
			{ValueType: ValuePercentage, Value: 100},
			{ValueType: ValueFixed, Value: 0},
			{ValueType: ValueFixed, Value: 999.99},
			{ValueType: ValueFixed, Value: 10000},
		} {
			eff := EffectivePrice(base, &d)
			assert.False(t, eff.IsNegative())
			assert.False(t, eff.GreaterThan(base))
		}
	})
}
