package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/domain"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/queries/facet_metadata"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/queries/search_catalog"
	"github.com/greenharvest/storefront-catalog/internal/pkg/logger"
)

// Handler serves the storefront catalog API. It is a thin coordinator:
// parameter parsing here, everything else in the query use cases.
type Handler struct {
	search   *search_catalog.Query
	filters  *facet_metadata.Query
	pageSize int
	log      *zap.Logger
}

// NewHandler creates the catalog API handler.
func NewHandler(search *search_catalog.Query, filters *facet_metadata.Query, pageSize int, log *zap.Logger) *Handler {
	return &Handler{
		search:   search,
		filters:  filters,
		pageSize: pageSize,
		log:      log,
	}
}

// Search handles GET /api/v1/catalog/search.
func (h *Handler) Search(c *gin.Context) {
	params, err := parseSearchParams(c, h.pageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.search.Execute(c.Request.Context(), &search_catalog.Request{Params: params})
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	items := make([]itemView, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toItemView(item))
	}

	c.JSON(http.StatusOK, searchResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// Filters handles GET /api/v1/catalog/filters.
func (h *Handler) Filters(c *gin.Context) {
	req := &facet_metadata.Request{CollectionID: c.Query("collection")}

	meta, err := h.filters.Execute(c.Request.Context(), req)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFiltersResponse(meta))
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeQueryError maps engine errors onto the HTTP contract. Store
// unavailability is retryable 503 so the UI can show a retry affordance;
// bad input is 400; anything else is 500.
func (h *Handler) writeQueryError(c *gin.Context, err error) {
	log := logger.WithRequestID(c.Request.Context(), h.log)

	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable),
		errors.Is(err, domain.ErrDiscountsUnavailable):
		log.Error("catalog query failed upstream", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Retryable: true})

	case errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrInvalidPageSize):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		log.Error("catalog query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
