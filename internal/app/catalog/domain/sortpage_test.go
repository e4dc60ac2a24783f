package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortItems_Name(t *testing.T) {
	items := []ListItem{
		listItem(t, "1", "cabbage", "", 100, 1),
		listItem(t, "2", "Apple Tree", "", 100, 1),
		listItem(t, "3", "Beetroot", "", 100, 1),
	}

	t.Run("ascending is case-insensitive", func(t *testing.T) {
		sorted := append([]ListItem(nil), items...)
		SortItems(sorted, SortNameAsc)
		assert.Equal(t, []string{"2", "3", "1"}, itemIDs(sorted))
	})

	t.Run("descending", func(t *testing.T) {
		sorted := append([]ListItem(nil), items...)
		SortItems(sorted, SortNameDesc)
		assert.Equal(t, []string{"1", "3", "2"}, itemIDs(sorted))
	})
}

func TestSortItems_Price(t *testing.T) {
	cheap := listItem(t, "cheap", "A", "", 100, 1)
	dear := listItem(t, "dear", "B", "", 900, 1)

	// deal item: base 1000, displayed price 50
	deal := listItem(t, "deal", "C", "", 1000, 1)
	deal.TopDeal = true
	deal.EffectivePrice = money(t, 50)

	items := []ListItem{dear, cheap, deal}

	t.Run("ascending uses the displayed price", func(t *testing.T) {
		sorted := append([]ListItem(nil), items...)
		SortItems(sorted, SortPriceAsc)
		assert.Equal(t, []string{"deal", "cheap", "dear"}, itemIDs(sorted))
	})

	t.Run("descending", func(t *testing.T) {
		sorted := append([]ListItem(nil), items...)
		SortItems(sorted, SortPriceDesc)
		assert.Equal(t, []string{"dear", "cheap", "deal"}, itemIDs(sorted))
	})
}

func TestSortItems_InStockFirst(t *testing.T) {
	items := []ListItem{
		listItem(t, "out1", "A", "", 100, 0),
		listItem(t, "in1", "B", "", 100, 3),
		listItem(t, "out2", "C", "", 100, 0),
		listItem(t, "in2", "D", "", 100, 1),
	}

	SortItems(items, SortInStockFirst)

	// stable partition: relative order preserved within each half
	assert.Equal(t, []string{"in1", "in2", "out1", "out2"}, itemIDs(items))
}

func TestSortItems_StableOnEqualKeys(t *testing.T) {
	items := []ListItem{
		listItem(t, "first", "Same Name", "", 100, 1),
		listItem(t, "second", "Same Name", "", 100, 1),
	}

	SortItems(items, SortNameAsc)
	assert.Equal(t, []string{"first", "second"}, itemIDs(items))
}

func TestPage(t *testing.T) {
	var items []ListItem
	ids := []string{"a", "b", "c", "d", "e"}
	for _, id := range ids {
		items = append(items, listItem(t, id, id, "", 100, 1))
	}

	t.Run("slices 1-indexed pages", func(t *testing.T) {
		page1, total, pages := Page(items, 1, 2)
		assert.Equal(t, []string{"a", "b"}, itemIDs(page1))
		assert.Equal(t, 5, total)
		assert.Equal(t, 3, pages)

		page3, _, _ := Page(items, 3, 2)
		assert.Equal(t, []string{"e"}, itemIDs(page3))
	})

	t.Run("page beyond the end returns an empty slice", func(t *testing.T) {
		got, total, pages := Page(items, 4, 2)
		assert.Empty(t, got)
		assert.Equal(t, 5, total)
		assert.Equal(t, 3, pages)
	})

	t.Run("concatenating all pages reproduces the set exactly", func(t *testing.T) {
		for _, pageSize := range []int{1, 2, 3, 5, 12} {
			_, _, totalPages := Page(items, 1, pageSize)
			var collected []string
			for p := 1; p <= totalPages; p++ {
				pageItems, _, _ := Page(items, p, pageSize)
				collected = append(collected, itemIDs(pageItems)...)
			}
			require.Equal(t, ids, collected, "pageSize %d", pageSize)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, total, pages := Page(nil, 1, 12)
		assert.Empty(t, got)
		assert.Zero(t, total)
		assert.Zero(t, pages)
	})
}
