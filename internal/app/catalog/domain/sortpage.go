package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator performs locale-aware, case-insensitive name comparison. A
// single shared instance would race (collate.Collator buffers state), so
// each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// SortItems orders the listing by the given key. Every ordering is stable:
// items that compare equal keep the relative order they arrived in, which
// keeps pagination deterministic across identical requests.
func SortItems(items []ListItem, key SortKey) {
	switch key {
	case SortNameAsc:
		c := newCollator()
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Product.Name, items[j].Product.Name) < 0
		})
	case SortNameDesc:
		c := newCollator()
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Product.Name, items[j].Product.Name) > 0
		})
	case SortPriceAsc:
		// Price orderings use the displayed price: discounted for deal
		// items, base otherwise.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice.LessThan(items[j].EffectivePrice)
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice.GreaterThan(items[j].EffectivePrice)
		})
	case SortInStockFirst:
		// Stable partition: in-stock items first, prior relative order
		// preserved within both halves.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].InStock && !items[j].InStock
		})
	}
}

// Page slices the sorted listing for a 1-indexed page number. Pages past
// the end return an empty slice, not an error; totalPages is
// ceil(total/pageSize). pageSize must be validated positive by the caller.
func Page(items []ListItem, page, pageSize int) (pageItems []ListItem, totalCount, totalPages int) {
	totalCount = len(items)
	totalPages = (totalCount + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= totalCount {
		return []ListItem{}, totalCount, totalPages
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	return items[start:end], totalCount, totalPages
}
