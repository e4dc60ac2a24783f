package domain

import "errors"

// Sentinel errors. Store unavailability gets distinct kinds so the UI can
// show a retry affordance instead of an empty page disguised as "no
// results".
var (
	ErrCatalogUnavailable   = errors.New("catalog store unavailable")
	ErrDiscountsUnavailable = errors.New("discount store unavailable")

	ErrInvalidSortKey  = errors.New("unknown sort key")
	ErrInvalidPageSize = errors.New("page size must be positive")
)
