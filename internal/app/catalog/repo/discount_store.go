package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/contracts"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/models/m_discount"
	"github.com/greenharvest/storefront-catalog/internal/pkg/query"
)

// DiscountStoreImpl implements the DiscountStore port against Spanner.
type DiscountStoreImpl struct {
	client *spanner.Client
}

// NewDiscountStore creates a Spanner-backed discount store.
func NewDiscountStore(client *spanner.Client) contracts.DiscountStore {
	return &DiscountStoreImpl{client: client}
}

// FetchDiscounts returns every discount rule. Time-window and status
// filtering stays in the engine so a single request instant governs it;
// malformed rows come back with a zeroed value type and are skipped
// downstream with a warning.
func (s *DiscountStoreImpl) FetchDiscounts(ctx context.Context) ([]domain.Discount, error) {
	stmt := query.From(m_discount.TableName).
		Select(m_discount.Columns...).
		OrderBy(m_discount.StartsAt, query.Desc).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var discounts []domain.Discount
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate discounts: %w", err)
		}

		var data m_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse discount: %w", err)
		}

		d := domain.Discount{
			ID:         data.DiscountID,
			Status:     domain.DiscountStatus(data.Status),
			StartsAt:   data.StartsAt,
			AppliesTo:  domain.AppliesTo(data.AppliesTo),
			AppliesIDs: data.AppliesIDs,
		}
		if data.EndsAt.Valid {
			endsAt := data.EndsAt.Time
			d.EndsAt = &endsAt
		}
		if data.ValueType.Valid {
			d.ValueType = domain.ValueType(data.ValueType.StringVal)
		}
		if data.Value.Valid {
			d.Value = data.Value.Float64
		} else {
			// Missing value makes the record malformed; mark it so the
			// resolver drops it instead of applying a zero discount.
			d.Value = -1
		}
		discounts = append(discounts, d)
	}

	return discounts, nil
}
