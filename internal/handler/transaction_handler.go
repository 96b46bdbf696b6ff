package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expensey/internal/export"
	"expensey/internal/middleware"
	"expensey/internal/service"
)

// TransactionHandler handles confirmed expense entry endpoints.
type TransactionHandler struct {
	txService service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// Create handles POST /api/v1/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tx, err := h.txService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tx)
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	limit = service.ClampListLimit(limit)

	txs, err := h.txService.List(c.Request.Context(), userID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondList(c, txs, ListMeta{Count: len(txs), Limit: limit})
}

// Export handles GET /api/v1/transactions/export and streams the listing as
// an XLSX workbook.
func (h *TransactionHandler) Export(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	txs, err := h.txService.List(c.Request.Context(), userID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := export.BuildWorkbook(txs)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	filename := fmt.Sprintf("expenses-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent; nothing useful left to return.
		log.Printf("transactions export: writing workbook: %v", err)
	}
}
