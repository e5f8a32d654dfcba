package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"burger_club/internal/storage"
	"burger_club/internal/store"
	"burger_club/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(storage.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	wf := workflow.New(st)
	h := NewOrderHandler(wf, st)

	router := gin.New()
	router.GET("/health", h.Health)
	api := router.Group("/api")
	api.GET("/menu", h.GetMenu)
	api.GET("/orders", h.ListOrders)
	api.POST("/orders", h.SubmitOrder)
	api.POST("/orders/confirm", h.ConfirmOrder)
	api.POST("/orders/cancel", h.CancelOrder)
	api.GET("/orders/draft", h.GetDraft)
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func submission() map[string]any {
	return map[string]any{
		"customer_name": "Alex Carter",
		"phone_number":  "+15551234567",
		"item_type":     "Deluxe BBQ Burger",
		"quantity":      2,
	}
}

func TestGetMenu(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/menu", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items []struct {
			ItemType  string  `json:"item_type"`
			UnitPrice float64 `json:"unit_price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 4)
	assert.Equal(t, "Classic Beef Burger", resp.Items[0].ItemType)
	assert.Equal(t, 12.99, resp.Items[0].UnitPrice)
}

func TestSubmit_InvalidInputReturnsFieldErrors(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders", map[string]any{
		"customer_name": "",
		"phone_number":  "123",
		"item_type":     "Classic Beef Burger",
		"quantity":      1,
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Errors []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)
}

func TestSubmitConfirmList_FullFlow(t *testing.T) {
	router, st := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders", submission())
	require.Equal(t, http.StatusOK, w.Code)
	var submitResp struct {
		State string `json:"state"`
		Draft struct {
			OrderID    string  `json:"order_id"`
			TotalPrice float64 `json:"total_price"`
		} `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitResp))
	assert.Equal(t, string(workflow.AwaitingConfirmation), submitResp.State)
	assert.Equal(t, "BC1001", submitResp.Draft.OrderID)
	assert.Equal(t, 31.98, submitResp.Draft.TotalPrice)

	// Nothing committed until confirm.
	assert.Empty(t, st.Orders())

	w = doJSON(t, router, http.MethodPost, "/api/orders/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var confirmResp struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmResp))
	assert.Equal(t, "BC1001", confirmResp.OrderID)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Count  int `json:"count"`
		Orders []struct {
			OrderID     string `json:"order_id"`
			TotalPrice  string `json:"total_price"`
			StatusBadge string `json:"status_badge"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Equal(t, 1, listResp.Count)
	assert.Equal(t, "BC1001", listResp.Orders[0].OrderID)
	assert.Equal(t, "$31.98", listResp.Orders[0].TotalPrice)
	assert.Equal(t, "Pending", listResp.Orders[0].StatusBadge)
}

func TestSubmitWhileDraftPending(t *testing.T) {
	router, _ := newRouter(t)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", submission()).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, router, http.MethodPost, "/api/orders", submission()).Code)
}

func TestConfirmWithoutDraft(t *testing.T) {
	router, _ := newRouter(t)

	assert.Equal(t, http.StatusConflict, doJSON(t, router, http.MethodPost, "/api/orders/confirm", nil).Code)
}

func TestCancel_LeavesStoreUnchanged(t *testing.T) {
	router, st := newRouter(t)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", submission()).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders/cancel", nil).Code)

	assert.Empty(t, st.Orders())
	// The cancelled draft's ID stays burned.
	assert.Equal(t, int64(1001), st.Counter())

	assert.Equal(t, http.StatusConflict, doJSON(t, router, http.MethodPost, "/api/orders/cancel", nil).Code)
}

func TestGetDraft(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/orders/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var idleResp struct {
		State string          `json:"state"`
		Draft json.RawMessage `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &idleResp))
	assert.Equal(t, string(workflow.Idle), idleResp.State)
	assert.Equal(t, "null", string(idleResp.Draft))

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", submission()).Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var awaitingResp struct {
		State string `json:"state"`
		Draft struct {
			OrderID string `json:"order_id"`
		} `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &awaitingResp))
	assert.Equal(t, string(workflow.AwaitingConfirmation), awaitingResp.State)
	assert.Equal(t, "BC1001", awaitingResp.Draft.OrderID)
}

func TestSubmit_MalformedJSON(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
