package search_catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/contracts"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/pkg/clock"
)

// Request wraps the shopper-controlled query parameters.
type Request struct {
	Params domain.QueryParams
}

// Query is the catalog search façade: one synchronous pass from catalog
// snapshot to paged, price-annotated result. It holds no mutable state, so
// a single instance is safe for concurrent requests.
type Query struct {
	catalog         contracts.CatalogStore
	discounts       contracts.DiscountStore
	ledger          contracts.SalesLedger
	clk             clock.Clock
	log             *zap.Logger
	topSellingLimit int
}

// NewQuery creates the search façade.
func NewQuery(
	catalog contracts.CatalogStore,
	discounts contracts.DiscountStore,
	ledger contracts.SalesLedger,
	clk clock.Clock,
	log *zap.Logger,
	topSellingLimit int,
) *Query {
	if topSellingLimit <= 0 {
		topSellingLimit = domain.DefaultTopSellingLimit
	}
	return &Query{
		catalog:         catalog,
		discounts:       discounts,
		ledger:          ledger,
		clk:             clk,
		log:             log,
		topSellingLimit: topSellingLimit,
	}
}

// Execute runs the query pipeline: in-effect discount resolution, ranking,
// facet filtering, sorting and pagination. Catalog and discount fetch
// failures are fatal and surface as distinct error kinds; a ledger failure
// only costs the top-selling badges.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.PagedResult, error) {
	params := req.Params
	if params.PageSize <= 0 {
		return nil, domain.ErrInvalidPageSize
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Sort == "" {
		params.Sort = domain.SortNameAsc
	}
	if !params.Sort.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, params.Sort)
	}

	products, err := q.catalog.FetchActiveCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	rawDiscounts, err := q.discounts.FetchDiscounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscountsUnavailable, err)
	}

	// One wall-clock read per request; every time-window check below uses
	// the same instant.
	now := q.clk.Now()
	inEffect := domain.InEffect(rawDiscounts, now, q.log)

	if params.CollectionID != "" {
		scoped := products[:0]
		for _, p := range products {
			if p.CollectionID() == params.CollectionID {
				scoped = append(scoped, p)
			}
		}
		products = scoped
	}

	// Products without an eligible variant drop out here and never reach
	// filtering or the result set.
	items := make([]domain.ListItem, 0, len(products))
	scopedProducts := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if item, ok := domain.NewListItem(p); ok {
			items = append(items, item)
			scopedProducts = append(scopedProducts, p)
		}
	}

	catalogIDs := make([]string, 0, len(items))
	for i := range items {
		catalogIDs = append(catalogIDs, items[i].Product.ID)
	}

	quantities, err := q.ledger.FetchOrderQuantities(ctx, catalogIDs)
	if err != nil {
		// Ranking is cosmetic; degrade to no top-selling badges rather
		// than failing the listing.
		if q.log != nil {
			q.log.Warn("sales ledger unavailable, skipping top-selling ranking", zap.Error(err))
		}
		quantities = nil
	}

	topSelling := make(map[string]struct{})
	for _, id := range domain.TopSelling(catalogIDs, quantities, q.topSellingLimit) {
		topSelling[id] = struct{}{}
	}
	topDeals := domain.TopDeals(scopedProducts, inEffect)

	for i := range items {
		item := &items[i]
		if _, ok := topSelling[item.Product.ID]; ok {
			item.TopSelling = true
		}
		if _, ok := topDeals[item.Product.ID]; ok {
			item.TopDeal = true
			if d, ok := domain.ResolveDiscount(&item.Product, inEffect); ok {
				item.EffectivePrice = domain.EffectivePrice(item.BasePrice, d)
			}
		}
	}

	filtered := domain.Filter(items, params)
	domain.SortItems(filtered, params.Sort)
	pageItems, totalCount, totalPages := domain.Page(filtered, params.Page, params.PageSize)

	return &contracts.PagedResult{
		Items:      pageItems,
		TotalCount: totalCount,
		Page:       params.Page,
		TotalPages: totalPages,
	}, nil
}
