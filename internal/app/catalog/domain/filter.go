package domain

import "strings"

// Filter applies the facet predicates to the annotated listing. Facets are
// ANDed together; within the availability and price-bucket facets the
// selected options are ORed. Special tags are the exception: selecting
// both top-selling and top-deal keeps only products carrying both badges.
func Filter(items []ListItem, params QueryParams) []ListItem {
	filtered := make([]ListItem, 0, len(items))
	for _, item := range items {
		if !matchesText(&item, params.Text) {
			continue
		}
		if !matchesAvailability(&item, params.Availability) {
			continue
		}
		if !matchesBuckets(&item, params.Buckets) {
			continue
		}
		if !matchesTags(&item, params.Tags) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// matchesText is a case-insensitive substring match against the product
// name or description. An empty query matches everything.
func matchesText(item *ListItem, text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(item.Product.Name), needle) ||
		strings.Contains(strings.ToLower(item.Product.Description), needle)
}

// matchesAvailability keys off the default variant's stock. Selecting both
// options, or neither, disables the facet.
func matchesAvailability(item *ListItem, selected []Availability) bool {
	var wantIn, wantOut bool
	for _, a := range selected {
		switch a {
		case AvailabilityInStock:
			wantIn = true
		case AvailabilityOutOfStock:
			wantOut = true
		}
	}
	if wantIn == wantOut {
		return true
	}
	if wantIn {
		return item.InStock
	}
	return !item.InStock
}

// matchesBuckets passes when the base (non-discounted) price falls in any
// selected bucket. No selection disables the facet.
func matchesBuckets(item *ListItem, buckets []PriceBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	for i := range buckets {
		if buckets[i].Contains(item.BasePrice) {
			return true
		}
	}
	return false
}

// matchesTags requires every selected badge to be present on the item.
func matchesTags(item *ListItem, tags []SpecialTag) bool {
	for _, tag := range tags {
		switch tag {
		case TagTopSelling:
			if !item.TopSelling {
				return false
			}
		case TagTopDeal:
			if !item.TopDeal {
				return false
			}
		}
	}
	return true
}
