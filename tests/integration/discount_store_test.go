//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/repo"
	"github.com/greenharvest/storefront-catalog/tests/testutil"
)

func findDiscount(discounts []domain.Discount, id string) (domain.Discount, bool) {
	for _, d := range discounts {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Discount{}, false
}

func TestDiscountStore_FetchDiscounts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewDiscountStore(client)

	now := time.Now().UTC().Truncate(time.Second)
	endsAt := now.Add(48 * time.Hour)

	bounded := testutil.CreateTestDiscount(t, client, "active", "products",
		[]string{"prod-1", "prod-2"}, "percentage", 12.5, now.Add(-time.Hour), &endsAt)
	openEnded := testutil.CreateTestDiscount(t, client, "active", "all",
		nil, "fixed", 250, now.Add(-24*time.Hour), nil)
	draft := testutil.CreateTestDiscount(t, client, "draft", "all",
		nil, "percentage", 5, now, nil)

	discounts, err := store.FetchDiscounts(ctx)
	require.NoError(t, err)
	require.Len(t, discounts, 3)

	t.Run("every row comes back regardless of status or window", func(t *testing.T) {
		for _, id := range []string{bounded, openEnded, draft} {
			_, found := findDiscount(discounts, id)
			assert.True(t, found, "discount %s missing", id)
		}
	})

	t.Run("fields round-trip", func(t *testing.T) {
		d, found := findDiscount(discounts, bounded)
		require.True(t, found)
		assert.Equal(t, domain.DiscountStatusActive, d.Status)
		assert.Equal(t, domain.AppliesToProducts, d.AppliesTo)
		assert.Equal(t, []string{"prod-1", "prod-2"}, d.AppliesIDs)
		assert.Equal(t, domain.ValuePercentage, d.ValueType)
		assert.Equal(t, 12.5, d.Value)
		require.NotNil(t, d.EndsAt)
		assert.WithinDuration(t, endsAt, *d.EndsAt, time.Second)
	})

	t.Run("open-ended discount has nil end", func(t *testing.T) {
		d, found := findDiscount(discounts, openEnded)
		require.True(t, found)
		assert.Nil(t, d.EndsAt)
	})

	t.Run("newest start comes first", func(t *testing.T) {
		for i := 1; i < len(discounts); i++ {
			assert.False(t, discounts[i-1].StartsAt.Before(discounts[i].StartsAt))
		}
	})
}

func TestDiscountStore_MalformedRow(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	store := repo.NewDiscountStore(client)
	id := testutil.CreateMalformedTestDiscount(t, client, time.Now().UTC().Add(-time.Hour))

	discounts, err := store.FetchDiscounts(context.Background())
	require.NoError(t, err)

	d, found := findDiscount(discounts, id)
	require.True(t, found)
	assert.False(t, d.WellFormed(), "null value must mark the record malformed")
}
