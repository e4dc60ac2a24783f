package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/storefront-catalog/internal/models/m_collection"
	"github.com/greenharvest/storefront-catalog/internal/models/m_discount"
	"github.com/greenharvest/storefront-catalog/internal/models/m_orderline"
	"github.com/greenharvest/storefront-catalog/internal/models/m_product"
	"github.com/greenharvest/storefront-catalog/internal/models/m_variant"
)

func apply(t *testing.T, client *spanner.Client, mutation *spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to apply fixture mutation")
}

// CreateTestCollection creates a collection row and returns its id.
func CreateTestCollection(t *testing.T, client *spanner.Client, title string) string {
	t.Helper()

	collectionID := uuid.New().String()
	model := m_collection.NewModel()
	apply(t, client, model.InsertMut(&m_collection.Data{
		CollectionID: collectionID,
		Title:        title,
	}))

	return collectionID
}

// CreateTestProduct creates an active product row and returns its id.
// Pass an empty collectionID for an uncollected product.
func CreateTestProduct(t *testing.T, client *spanner.Client, name, collectionID string) string {
	t.Helper()

	productID := uuid.New().String()
	data := &m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Test product description",
		Active:      true,
	}
	if collectionID != "" {
		data.CollectionID = spanner.NullString{StringVal: collectionID, Valid: true}
	}

	model := m_product.NewModel()
	apply(t, client, model.InsertMut(data))

	return productID
}

// CreateInactiveTestProduct creates an inactive product row.
func CreateInactiveTestProduct(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	productID := uuid.New().String()
	model := m_product.NewModel()
	apply(t, client, model.InsertMut(&m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Inactive test product",
		Active:      false,
	}))

	return productID
}

// CreateTestVariant creates an active variant row and returns its id.
func CreateTestVariant(t *testing.T, client *spanner.Client, productID string, priceNumerator int64, stock int64, position int64) string {
	t.Helper()

	variantID := uuid.New().String()
	model := m_variant.NewModel()
	apply(t, client, model.InsertMut(&m_variant.Data{
		VariantID:        variantID,
		ProductID:        productID,
		Title:            "Default",
		Kind:             "weight",
		Magnitude:        spanner.NullFloat64{Float64: 5, Valid: true},
		Unit:             spanner.NullString{StringVal: "kg", Valid: true},
		PriceNumerator:   priceNumerator,
		PriceDenominator: 1,
		Stock:            stock,
		Active:           true,
		Position:         position,
	}))

	return variantID
}

// CreateInactiveTestVariant creates an inactive variant row.
func CreateInactiveTestVariant(t *testing.T, client *spanner.Client, productID string, position int64) string {
	t.Helper()

	variantID := uuid.New().String()
	model := m_variant.NewModel()
	apply(t, client, model.InsertMut(&m_variant.Data{
		VariantID:        variantID,
		ProductID:        productID,
		Title:            "Retired",
		Kind:             "weight",
		PriceNumerator:   100,
		PriceDenominator: 1,
		Active:           false,
		Position:         position,
	}))

	return variantID
}

// CreateTestDiscount creates a discount row and returns its id.
func CreateTestDiscount(t *testing.T, client *spanner.Client, status, appliesTo string, appliesIDs []string, valueType string, value float64, startsAt time.Time, endsAt *time.Time) string {
	t.Helper()

	discountID := uuid.New().String()
	data := &m_discount.Data{
		DiscountID: discountID,
		Status:     status,
		StartsAt:   startsAt,
		AppliesTo:  appliesTo,
		AppliesIDs: appliesIDs,
		ValueType:  spanner.NullString{StringVal: valueType, Valid: true},
		Value:      spanner.NullFloat64{Float64: value, Valid: true},
	}
	if endsAt != nil {
		data.EndsAt = spanner.NullTime{Time: *endsAt, Valid: true}
	}

	model := m_discount.NewModel()
	apply(t, client, model.InsertMut(data))

	return discountID
}

// CreateMalformedTestDiscount creates an active discount row with a NULL
// value, the shape the engine must skip rather than apply.
func CreateMalformedTestDiscount(t *testing.T, client *spanner.Client, startsAt time.Time) string {
	t.Helper()

	discountID := uuid.New().String()
	model := m_discount.NewModel()
	apply(t, client, model.InsertMut(&m_discount.Data{
		DiscountID: discountID,
		Status:     "active",
		StartsAt:   startsAt,
		AppliesTo:  "all",
		ValueType:  spanner.NullString{StringVal: "percentage", Valid: true},
	}))

	return discountID
}

// CreateTestOrderLine creates one order line for a product.
func CreateTestOrderLine(t *testing.T, client *spanner.Client, productID string, quantity int64, orderedAt time.Time) {
	t.Helper()

	model := m_orderline.NewModel()
	apply(t, client, model.InsertMut(&m_orderline.Data{
		OrderID:    uuid.New().String(),
		LineNumber: 1,
		ProductID:  productID,
		Quantity:   quantity,
		OrderedAt:  orderedAt,
	}))
}
