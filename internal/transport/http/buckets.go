package http

import (
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
)

// BucketDef is one row of the fixed price-bucket table the storefront
// sidebar renders. Max nil means unbounded above.
type BucketDef struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max,omitempty"`
}

func bound(v float64) *float64 { return &v }

// DefaultBucketTable is the bucket set shared by every catalog page. The
// ids are part of the URL contract with the UI, so changing them breaks
// saved links.
var DefaultBucketTable = []BucketDef{
	{ID: "under-500", Label: "Under 500", Min: 0, Max: bound(500)},
	{ID: "500-1000", Label: "500 – 1,000", Min: 500, Max: bound(1000)},
	{ID: "1000-2500", Label: "1,000 – 2,500", Min: 1000, Max: bound(2500)},
	{ID: "over-2500", Label: "Over 2,500", Min: 2500},
}

// resolveBuckets maps selected bucket ids onto engine price ranges.
// Unknown ids are ignored rather than rejected; a stale link should still
// render the rest of the page.
func resolveBuckets(ids []string) []domain.PriceBucket {
	var buckets []domain.PriceBucket
	for _, id := range ids {
		for _, def := range DefaultBucketTable {
			if def.ID != id {
				continue
			}
			b := domain.PriceBucket{
				ID:  def.ID,
				Min: domain.NewMoneyFromFloat64(def.Min),
			}
			if def.Max != nil {
				b.Max = domain.NewMoneyFromFloat64(*def.Max)
			}
			buckets = append(buckets, b)
			break
		}
	}
	return buckets
}
