package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopSelling(t *testing.T) {
	t.Run("ranks by quantity descending", func(t *testing.T) {
		quantities := map[string]int64{"a": 3, "b": 10, "c": 7}
		got := TopSelling([]string{"a", "b", "c"}, quantities, 4)
		assert.Equal(t, []string{"b", "c", "a"}, got)
	})

	t.Run("ties break on product id ascending", func(t *testing.T) {
		quantities := map[string]int64{"a": 5, "b": 5, "c": 0}
		got := TopSelling([]string{"c", "b", "a"}, quantities, 2)
		assert.Equal(t, []string{"a", "b"}, got)

		// repeated calls over identical inputs agree
		assert.Equal(t, got, TopSelling([]string{"a", "c", "b"}, quantities, 2))
	})

	t.Run("truncates to limit", func(t *testing.T) {
		quantities := map[string]int64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}
		got := TopSelling([]string{"a", "b", "c", "d", "e"}, quantities, 4)
		assert.Equal(t, []string{"e", "d", "c", "b"}, got)
	})

	t.Run("ignores products outside the catalog scope", func(t *testing.T) {
		quantities := map[string]int64{"a": 1, "zz": 100}
		got := TopSelling([]string{"a"}, quantities, 4)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("zero quantities never rank", func(t *testing.T) {
		quantities := map[string]int64{"a": 0}
		assert.Empty(t, TopSelling([]string{"a"}, quantities, 4))
	})

	t.Run("empty ledger yields empty ranking", func(t *testing.T) {
		assert.Empty(t, TopSelling([]string{"a", "b"}, nil, 4))
	})
}

func TestTopDeals(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		{ID: "a", Active: true, Collection: &Collection{ID: "col-1"}, Variants: []Variant{{ID: "va", Active: true, Price: money(t, 10)}}},
		{ID: "b", Active: true, Variants: []Variant{{ID: "vb", Active: true, Price: money(t, 20)}}},
	}

	t.Run("an all discount makes every product a deal", func(t *testing.T) {
		deals := TopDeals(products, []Discount{activeDiscount("all", AppliesToAll, nil, now)})
		assert.Len(t, deals, 2)
	})

	t.Run("membership follows target matching", func(t *testing.T) {
		deals := TopDeals(products, []Discount{
			activeDiscount("coll", AppliesToCollections, []string{"col-1"}, now),
		})
		_, aIsDeal := deals["a"]
		_, bIsDeal := deals["b"]
		assert.True(t, aIsDeal)
		assert.False(t, bIsDeal)
	})

	t.Run("no discounts means no deals", func(t *testing.T) {
		assert.Empty(t, TopDeals(products, nil))
	})
}
