package contracts

import (
	"context"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
)

// CatalogStore supplies the product/variant/collection snapshot. The
// snapshot must be immutable for the duration of the request; the engine
// never writes back.
type CatalogStore interface {
	// FetchActiveCatalog returns active products with their active
	// variants nested in list order and collection references attached.
	FetchActiveCatalog(ctx context.Context) ([]domain.Product, error)
}

// DiscountStore supplies the promotional discount rules.
type DiscountStore interface {
	FetchDiscounts(ctx context.Context) ([]domain.Discount, error)
}

// SalesLedger supplies historical order quantities, already summed per
// product, scoped to the requested product ids.
type SalesLedger interface {
	FetchOrderQuantities(ctx context.Context, productIDs []string) (map[string]int64, error)
}

// PagedResult is the query façade's output contract.
type PagedResult struct {
	Items      []domain.ListItem
	TotalCount int
	Page       int
	TotalPages int
}
