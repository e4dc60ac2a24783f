//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/repo"
	"github.com/greenharvest/storefront-catalog/tests/testutil"
)

func findProduct(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func TestCatalogStore_FetchActiveCatalog(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewCatalogStore(client)

	collectionID := testutil.CreateTestCollection(t, client, "Vegetables")

	collected := testutil.CreateTestProduct(t, client, "Tomato Seeds", collectionID)
	testutil.CreateTestVariant(t, client, collected, 250, 10, 1)

	uncollected := testutil.CreateTestProduct(t, client, "Garden Trowel", "")
	testutil.CreateTestVariant(t, client, uncollected, 900, 0, 1)

	inactive := testutil.CreateInactiveTestProduct(t, client, "Retired Item")
	testutil.CreateTestVariant(t, client, inactive, 100, 5, 1)

	products, err := store.FetchActiveCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	t.Run("inactive products are excluded", func(t *testing.T) {
		_, found := findProduct(products, inactive)
		assert.False(t, found)
	})

	t.Run("collection reference is resolved", func(t *testing.T) {
		p, found := findProduct(products, collected)
		require.True(t, found)
		require.NotNil(t, p.Collection)
		assert.Equal(t, "Vegetables", p.Collection.Title)

		bare, found := findProduct(products, uncollected)
		require.True(t, found)
		assert.Nil(t, bare.Collection)
	})

	t.Run("variant price and stock round-trip", func(t *testing.T) {
		p, found := findProduct(products, collected)
		require.True(t, found)
		require.Len(t, p.Variants, 1)
		assert.Equal(t, "250.00", p.Variants[0].Price.String())
		assert.Equal(t, int64(10), p.Variants[0].Stock)
	})
}

func TestCatalogStore_VariantOrdering(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewCatalogStore(client)

	productID := testutil.CreateTestProduct(t, client, "Apple Saplings", "")
	second := testutil.CreateTestVariant(t, client, productID, 500, 3, 2)
	first := testutil.CreateTestVariant(t, client, productID, 300, 7, 1)
	testutil.CreateInactiveTestVariant(t, client, productID, 0)

	products, err := store.FetchActiveCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	// position order decides the default variant; inactive rows never load
	variants := products[0].Variants
	require.Len(t, variants, 2)
	assert.Equal(t, first, variants[0].ID)
	assert.Equal(t, second, variants[1].ID)
}

func TestCatalogStore_EmptyCatalog(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	store := repo.NewCatalogStore(client)
	products, err := store.FetchActiveCatalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
