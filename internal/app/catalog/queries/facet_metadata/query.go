package facet_metadata

import (
	"context"
	"fmt"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/contracts"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
)

// AvailabilityCounts holds the per-option product counts shown next to the
// availability checkboxes.
type AvailabilityCounts struct {
	InStock    int
	OutOfStock int
}

// PriceRange is the span of base prices across the listed catalog.
type PriceRange struct {
	Min *domain.Money
	Max *domain.Money
}

// Metadata feeds the storefront filter sidebar.
type Metadata struct {
	Availability AvailabilityCounts
	Collections  []domain.Collection
	PriceRange   *PriceRange
}

// Request optionally scopes the metadata to one collection, mirroring the
// per-page catalog scope of the search query.
type Request struct {
	CollectionID string
}

// Query computes facet metadata from the same catalog snapshot a search
// would use.
type Query struct {
	catalog contracts.CatalogStore
}

// NewQuery creates the facet metadata query.
func NewQuery(catalog contracts.CatalogStore) *Query {
	return &Query{catalog: catalog}
}

// Execute builds the sidebar metadata. Only products with an eligible
// default variant are counted, matching what a search would return.
func (q *Query) Execute(ctx context.Context, req *Request) (*Metadata, error) {
	products, err := q.catalog.FetchActiveCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	meta := &Metadata{}
	seenCollections := make(map[string]struct{})

	for _, p := range products {
		if p.Collection != nil {
			if _, ok := seenCollections[p.Collection.ID]; !ok {
				seenCollections[p.Collection.ID] = struct{}{}
				meta.Collections = append(meta.Collections, *p.Collection)
			}
		}

		if req.CollectionID != "" && p.CollectionID() != req.CollectionID {
			continue
		}

		item, ok := domain.NewListItem(p)
		if !ok {
			continue
		}

		if item.InStock {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}

		if meta.PriceRange == nil {
			meta.PriceRange = &PriceRange{
				Min: item.BasePrice.Copy(),
				Max: item.BasePrice.Copy(),
			}
		} else {
			if item.BasePrice.LessThan(meta.PriceRange.Min) {
				meta.PriceRange.Min = item.BasePrice.Copy()
			}
			if item.BasePrice.GreaterThan(meta.PriceRange.Max) {
				meta.PriceRange.Max = item.BasePrice.Copy()
			}
		}
	}

	return meta, nil
}
