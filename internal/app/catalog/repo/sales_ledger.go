package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/contracts"
	"github.com/greenharvest/storefront-catalog/internal/models/m_orderline"
	"github.com/greenharvest/storefront-catalog/internal/pkg/query"
)

// SalesLedgerImpl implements the SalesLedger port against the order_lines
// table.
type SalesLedgerImpl struct {
	client *spanner.Client
}

// NewSalesLedger creates a Spanner-backed sales ledger.
func NewSalesLedger(client *spanner.Client) contracts.SalesLedger {
	return &SalesLedgerImpl{client: client}
}

// FetchOrderQuantities sums ordered quantities per product, scoped to the
// given product ids. The aggregate is derived here per request and never
// persisted.
func (s *SalesLedgerImpl) FetchOrderQuantities(ctx context.Context, productIDs []string) (map[string]int64, error) {
	quantities := make(map[string]int64, len(productIDs))
	if len(productIDs) == 0 {
		return quantities, nil
	}

	stmt := query.From(m_orderline.TableName).
		Select(m_orderline.ProductID, m_orderline.Quantity).
		Where(query.In(m_orderline.ProductID, productIDs)).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order lines: %w", err)
		}

		var productID string
		var quantity int64
		if err := row.Columns(&productID, &quantity); err != nil {
			return nil, fmt.Errorf("failed to parse order line: %w", err)
		}
		quantities[productID] += quantity
	}

	return quantities, nil
}
