package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expensey/internal/domain"
	"expensey/internal/handler"
	"expensey/internal/middleware"
	"expensey/internal/service"
	"expensey/mocks"
)

func newTransactionRouter(repo *mocks.MockTransactionRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyUserID, userID)
			c.Next()
		})
	}
	h := handler.NewTransactionHandler(service.NewTransactionService(repo))
	r.POST("/api/v1/transactions", h.Create)
	r.GET("/api/v1/transactions", h.List)
	r.GET("/api/v1/transactions/export", h.Export)
	return r
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Transaction")).
		Run(func(args mock.Arguments) {
			// The real repo assigns the identifier.
			args.Get(1).(*domain.Transaction).ID = uuid.New()
		}).
		Return(nil)

	r := newTransactionRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions",
		strings.NewReader(`{"amount":12.50,"merchant":"Cafe"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    domain.Transaction `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 12.50, resp.Data.Amount)
	assert.Equal(t, "cafe", resp.Data.Merchant)
	assert.Equal(t, "INR", resp.Data.Currency)
	assert.Equal(t, domain.CategoryOther, resp.Data.Category)
	assert.NotEmpty(t, resp.Data.ID)
}

func TestTransactionHandler_Create_RejectsBadAmounts(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	r := newTransactionRouter(repo, "user-1")

	for _, body := range []string{
		`{"amount":0,"merchant":"Cafe"}`,
		`{"amount":-5,"merchant":"Cafe"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "INVALID_AMOUNT", body)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransactionHandler_Create_RejectsEmptyMerchant(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	r := newTransactionRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions",
		strings.NewReader(`{"amount":100,"merchant":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_MERCHANT")
}

func TestTransactionHandler_Create_NoIdentity(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	r := newTransactionRouter(repo, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions",
		strings.NewReader(`{"amount":100,"merchant":"cafe"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTransactionHandler_List(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	repo.On("ListRecent", mock.Anything, "user-1", 100).Return([]domain.Transaction{
		{Amount: 200, Currency: "INR", Merchant: "swiggy", Category: domain.CategoryFoodDining},
	}, nil)

	r := newTransactionRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swiggy")
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), `"limit":100`)
	repo.AssertExpectations(t)
}

func TestTransactionHandler_Export(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	repo.On("ListRecent", mock.Anything, "user-1", 100).Return([]domain.Transaction{
		{Amount: 200, Currency: "INR", Merchant: "swiggy", Category: domain.CategoryFoodDining},
	}, nil)

	r := newTransactionRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/export", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
