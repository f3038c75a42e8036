package handlers

import (
	"encoding/json"
	"net/http"

	"pawfect/models"
	"pawfect/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxSearchBodyBytes caps the request body; larger bodies count as no filters.
const maxSearchBodyBytes = 64 << 10

type SearchHandler struct {
	SearchSvc search.SearchService
}

func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{SearchSvc: svc}
}

// Search handles POST /api/search. The body is read whatever its content
// type, and anything that is not a JSON object counts as "no filters".
func (h *SearchHandler) Search(c *gin.Context) {
	logger := getLogger(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSearchBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		logger.Warn("Search: failed to read request body", zap.Error(err))
		raw = nil
	}
	q := decodeSearchQuery(raw)

	resp := h.SearchSvc.Search(c.Request.Context(), q)
	logger.Debug("Search: completed",
		zap.String("location", q.Location),
		zap.String("petService", q.PetService),
		zap.Int("count", resp.Count),
	)
	c.JSON(http.StatusOK, resp)
}

// Options handles GET /api/search/options.
func (h *SearchHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, h.SearchSvc.Options())
}

// decodeSearchQuery extracts the four filter fields from raw. Only JSON
// strings are taken; missing, null or non-string values become "".
func decodeSearchQuery(raw []byte) models.SearchQuery {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.SearchQuery{}
	}
	return models.SearchQuery{
		PetType:    stringField(fields, "petType"),
		Location:   stringField(fields, "location"),
		PetService: stringField(fields, "petService"),
		DateRange:  stringField(fields, "dateRange"),
	}
}

func stringField(fields map[string]json.RawMessage, key string) string {
	v, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}
