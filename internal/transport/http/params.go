package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
)

// parseSearchParams maps the request's query string onto engine params.
// Repeatable facet params follow the storefront URL contract:
// ?q=&availability=&bucket=&tag=&sort=&collection=&page=
func parseSearchParams(c *gin.Context, pageSize int) (domain.QueryParams, error) {
	params := domain.QueryParams{
		Text:         c.Query("q"),
		CollectionID: c.Query("collection"),
		PageSize:     pageSize,
		Page:         1,
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return domain.QueryParams{}, fmt.Errorf("invalid page %q", raw)
		}
		params.Page = page
	}

	for _, raw := range c.QueryArray("availability") {
		switch a := domain.Availability(raw); a {
		case domain.AvailabilityInStock, domain.AvailabilityOutOfStock:
			params.Availability = append(params.Availability, a)
		default:
			return domain.QueryParams{}, fmt.Errorf("invalid availability %q", raw)
		}
	}

	for _, raw := range c.QueryArray("tag") {
		switch t := domain.SpecialTag(raw); t {
		case domain.TagTopSelling, domain.TagTopDeal:
			params.Tags = append(params.Tags, t)
		default:
			return domain.QueryParams{}, fmt.Errorf("invalid tag %q", raw)
		}
	}

	params.Buckets = resolveBuckets(c.QueryArray("bucket"))

	if raw := c.Query("sort"); raw != "" {
		key := domain.SortKey(raw)
		if !key.Valid() {
			return domain.QueryParams{}, fmt.Errorf("invalid sort %q", raw)
		}
		params.Sort = key
	}

	return params, nil
}
