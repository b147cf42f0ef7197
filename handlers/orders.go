package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"restaurant-pos/middleware"
	"restaurant-pos/models"
	"restaurant-pos/reports"
	"restaurant-pos/statemachine"
)

// ActiveOrders returns every order still in progress
func (h *Handler) ActiveOrders(c *gin.Context) {
	orders, err := reports.ActiveOrders(c.Request.Context(), h.DB)
	if err != nil {
		h.Log.Error("active orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// KitchenOrders returns the kitchen's queue, oldest first
func (h *Handler) KitchenOrders(c *gin.Context) {
	orders, err := reports.KitchenQueue(c.Request.Context(), h.DB)
	if err != nil {
		h.Log.Error("kitchen queue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	// Kitchen view: group counts by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{"order_summary": summary, "count": len(orders), "orders": orders})
}

var errStatusChanged = errors.New("order status changed since it was read")

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus moves an order along its lifecycle if the caller's role allows it
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.Log.Error("load order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, p.Role); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	err = db.Transaction(func(tx *gorm.DB) error {
		// only move the order if nobody else moved it since it was read
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, prevStatus).
			Update("status", req.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStatusChanged
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prevStatus,
			ToStatus:   req.Status,
			ChangedBy:  middleware.GetUserID(c),
			Note:       req.Note,
		}).Error
	})
	if errors.Is(err, errStatusChanged) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "Order status changed concurrently, reload and retry",
			"order_id":    order.ID,
			"read_status": prevStatus,
			"requested":   req.Status,
		})
		return
	}
	if err != nil {
		h.Log.Error("update order status", zap.Error(err), zap.Uint("order_id", order.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

// GetStateMachineInfo returns the order lifecycle for documentation
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, s := range []models.OrderStatus{
		models.StatusPending, models.StatusPreparing, models.StatusReady,
		models.StatusServed, models.StatusCompleted, models.StatusCancelled,
	} {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"description":     "Restaurant POS Order Lifecycle",
	})
}
