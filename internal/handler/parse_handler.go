package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensey/internal/service"
)

// ParseHandler handles the free-text extraction endpoint.
type ParseHandler struct {
	parseService service.ParseService
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService service.ParseService) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

// ParseRequest is the body for POST /api/v1/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// Parse handles POST /api/v1/parse. The response carries the extraction, its
// source ("ai", "local" or "fallback"), and the remote failure message when
// the heuristic took over.
func (h *ParseHandler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.parseService.Parse(c.Request.Context(), req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}
