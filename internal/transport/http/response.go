package http

import (
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/queries/facet_metadata"
)

// Wire types for the storefront JSON contract. Prices serialize as
// two-decimal strings so the UI never re-rounds them.

type variantView struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Kind      string   `json:"kind"`
	Magnitude *float64 `json:"magnitude,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	ImageRef  string   `json:"imageRef,omitempty"`
}

type collectionView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type itemView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Collection     *collectionView `json:"collection,omitempty"`
	DefaultVariant variantView     `json:"defaultVariant"`
	BasePrice      string          `json:"basePrice"`
	EffectivePrice string          `json:"effectivePrice"`
	InStock        bool            `json:"inStock"`
	IsTopSelling   bool            `json:"isTopSelling"`
	IsTopDeal      bool            `json:"isTopDeal"`
}

type searchResponse struct {
	Items      []itemView `json:"items"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

type availabilityView struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

type priceRangeView struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type filtersResponse struct {
	Availability availabilityView `json:"availability"`
	Collections  []collectionView `json:"collections"`
	PriceRange   *priceRangeView  `json:"priceRange,omitempty"`
	PriceBuckets []BucketDef      `json:"priceBuckets"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func toItemView(item domain.ListItem) itemView {
	view := itemView{
		ID:          item.Product.ID,
		Name:        item.Product.Name,
		Description: item.Product.Description,
		DefaultVariant: variantView{
			ID:        item.DefaultVariant.ID,
			Title:     item.DefaultVariant.Title,
			Kind:      item.DefaultVariant.Kind,
			Magnitude: item.DefaultVariant.Magnitude,
			Unit:      item.DefaultVariant.Unit,
			ImageRef:  item.DefaultVariant.ImageRef,
		},
		BasePrice:      item.BasePrice.String(),
		EffectivePrice: item.EffectivePrice.String(),
		InStock:        item.InStock,
		IsTopSelling:   item.TopSelling,
		IsTopDeal:      item.TopDeal,
	}
	if item.Product.Collection != nil {
		view.Collection = &collectionView{
			ID:    item.Product.Collection.ID,
			Title: item.Product.Collection.Title,
		}
	}
	return view
}

func toFiltersResponse(meta *facet_metadata.Metadata) filtersResponse {
	resp := filtersResponse{
		Availability: availabilityView{
			InStock:    meta.Availability.InStock,
			OutOfStock: meta.Availability.OutOfStock,
		},
		Collections:  make([]collectionView, 0, len(meta.Collections)),
		PriceBuckets: DefaultBucketTable,
	}
	for _, c := range meta.Collections {
		resp.Collections = append(resp.Collections, collectionView{ID: c.ID, Title: c.Title})
	}
	if meta.PriceRange != nil {
		resp.PriceRange = &priceRangeView{
			Min: meta.PriceRange.Min.String(),
			Max: meta.PriceRange.Max.String(),
		}
	}
	return resp
}
