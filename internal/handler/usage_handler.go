package handler

import (
	"github.com/gin-gonic/gin"

	"expensey/internal/usage"
)

// UsageHandler exposes the process-wide usage counters for diagnostics.
type UsageHandler struct {
	accountant *usage.Accountant
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(accountant *usage.Accountant) *UsageHandler {
	return &UsageHandler{accountant: accountant}
}

// Get handles GET /api/v1/usage.
func (h *UsageHandler) Get(c *gin.Context) {
	RespondOK(c, h.accountant.Snapshot())
}
