package handlers

import (
	"errors"
	"net/http"

	"burger_club/internal/catalog"
	"burger_club/internal/models"
	"burger_club/internal/render"
	"burger_club/internal/store"
	"burger_club/internal/workflow"

	"github.com/gin-gonic/gin"
)

// OrderHandler translates the widget's form and dialog events into workflow
// transitions and store reads. It holds no order state of its own.
type OrderHandler struct {
	workflow *workflow.Workflow
	store    *store.Store
}

func NewOrderHandler(wf *workflow.Workflow, st *store.Store) *OrderHandler {
	return &OrderHandler{workflow: wf, store: st}
}

// GetMenu returns the catalog items with their unit prices, feeding the
// item select on the form.
func (h *OrderHandler) GetMenu(c *gin.Context) {
	items := make([]gin.H, 0, len(catalog.Items()))
	for _, name := range catalog.Items() {
		items = append(items, gin.H{
			"item_type":  name,
			"unit_price": catalog.Price(name),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SubmitOrder validates the raw input and, when valid, builds a draft and
// opens the confirmation step.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, draft, err := h.workflow.Submit(input)
	if err != nil {
		if errors.Is(err, workflow.ErrDraftPending) {
			c.JSON(http.StatusConflict, gin.H{"error": "An order is already awaiting confirmation"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": result.Errors})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": workflow.AwaitingConfirmation,
		"draft": draft,
	})
}

// ConfirmOrder commits the outstanding draft.
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	order, err := h.workflow.Confirm()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No order awaiting confirmation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": order.OrderID,
		"order":    order,
	})
}

// CancelOrder discards the outstanding draft. The already-assigned order ID
// stays burned.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	if err := h.workflow.Cancel(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No order awaiting confirmation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": workflow.Idle})
}

// GetDraft exposes the workflow state and current draft for the dialog.
func (h *OrderHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state": h.workflow.State(),
		"draft": h.workflow.Draft(),
	})
}

// ListOrders returns the stored orders projected into display rows, newest
// first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	rows := render.Rows(h.store.Orders())
	c.JSON(http.StatusOK, gin.H{
		"orders": rows,
		"count":  len(rows),
	})
}

// Health is a liveness probe.
func (h *OrderHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
