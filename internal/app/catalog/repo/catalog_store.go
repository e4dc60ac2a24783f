package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/contracts"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/models/m_collection"
	"github.com/greenharvest/storefront-catalog/internal/models/m_product"
	"github.com/greenharvest/storefront-catalog/internal/models/m_variant"
	"github.com/greenharvest/storefront-catalog/internal/pkg/query"
)

// CatalogStoreImpl implements the CatalogStore port against Spanner. All
// reads for one snapshot go through a single read-only transaction so the
// products, variants and collections are mutually consistent.
type CatalogStoreImpl struct {
	client *spanner.Client
}

// NewCatalogStore creates a Spanner-backed catalog store.
func NewCatalogStore(client *spanner.Client) contracts.CatalogStore {
	return &CatalogStoreImpl{client: client}
}

// FetchActiveCatalog returns active products with their active variants in
// position order and collection references resolved.
func (s *CatalogStoreImpl) FetchActiveCatalog(ctx context.Context) ([]domain.Product, error) {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	collections, err := s.fetchCollections(ctx, txn)
	if err != nil {
		return nil, err
	}

	variantsByProduct, err := s.fetchActiveVariants(ctx, txn)
	if err != nil {
		return nil, err
	}

	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Active, true)).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	var products []domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		p := domain.Product{
			ID:          data.ProductID,
			Name:        data.Name,
			Description: data.Description,
			Active:      data.Active,
			Variants:    variantsByProduct[data.ProductID],
		}
		if data.CollectionID.Valid {
			if c, ok := collections[data.CollectionID.StringVal]; ok {
				p.Collection = &c
			}
		}
		products = append(products, p)
	}

	return products, nil
}

func (s *CatalogStoreImpl) fetchCollections(ctx context.Context, txn *spanner.ReadOnlyTransaction) (map[string]domain.Collection, error) {
	stmt := query.From(m_collection.TableName).
		Select(m_collection.Columns...).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	collections := make(map[string]domain.Collection)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate collections: %w", err)
		}

		var data m_collection.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse collection: %w", err)
		}
		collections[data.CollectionID] = domain.Collection{
			ID:    data.CollectionID,
			Title: data.Title,
		}
	}
	return collections, nil
}

func (s *CatalogStoreImpl) fetchActiveVariants(ctx context.Context, txn *spanner.ReadOnlyTransaction) (map[string][]domain.Variant, error) {
	stmt := query.From(m_variant.TableName).
		Select(m_variant.Columns...).
		Where(query.Eq(m_variant.Active, true)).
		OrderBy(m_variant.ProductID, query.Asc).
		OrderBy(m_variant.Position, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	variants := make(map[string][]domain.Variant)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate variants: %w", err)
		}

		var data m_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse variant: %w", err)
		}

		price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid price on variant %s: %w", data.VariantID, err)
		}

		v := domain.Variant{
			ID:     data.VariantID,
			Title:  data.Title,
			Kind:   data.Kind,
			Price:  price,
			Stock:  data.Stock,
			Active: data.Active,
		}
		if data.Magnitude.Valid {
			magnitude := data.Magnitude.Float64
			v.Magnitude = &magnitude
		}
		if data.Unit.Valid {
			v.Unit = data.Unit.StringVal
		}
		if data.ImageURL.Valid {
			v.ImageRef = data.ImageURL.StringVal
		}
		variants[data.ProductID] = append(variants[data.ProductID], v)
	}
	return variants, nil
}
