package domain

import "sort"

// DefaultTopSellingLimit is the number of products the storefront badges
// as top sellers.
const DefaultTopSellingLimit = 4

// TopSelling ranks the given catalog products by cumulative ordered
// quantity and returns the ids of the top limit sellers, best first.
// Products outside catalogIDs are ignored even if the ledger knows them.
// Ties break on product id ascending so repeated calls over the same
// inputs always produce the same ranking.
func TopSelling(catalogIDs []string, quantities map[string]int64, limit int) []string {
	if limit <= 0 {
		return nil
	}

	type sales struct {
		productID string
		quantity  int64
	}

	ranked := make([]sales, 0, len(catalogIDs))
	for _, id := range catalogIDs {
		if qty, ok := quantities[id]; ok && qty > 0 {
			ranked = append(ranked, sales{productID: id, quantity: qty})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].quantity != ranked[j].quantity {
			return ranked[i].quantity > ranked[j].quantity
		}
		return ranked[i].productID < ranked[j].productID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]string, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.productID)
	}
	return ids
}

// TopDeals returns the set of product ids with at least one in-effect
// discount matching them. Membership only needs target matching, not full
// precedence resolution. A single "all" discount makes every product a
// deal.
func TopDeals(products []Product, inEffect []Discount) map[string]struct{} {
	deals := make(map[string]struct{})
	if len(inEffect) == 0 {
		return deals
	}

	for i := range inEffect {
		if inEffect[i].AppliesTo == AppliesToAll {
			for j := range products {
				deals[products[j].ID] = struct{}{}
			}
			return deals
		}
	}

	for j := range products {
		p := &products[j]
		for i := range inEffect {
			if inEffect[i].Matches(p) {
				deals[p.ID] = struct{}{}
				break
			}
		}
	}
	return deals
}
