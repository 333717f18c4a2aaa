package controllers

import (
	"errors"
	"log"
	"net/http"

	"thai-kitchen/models"
	"thai-kitchen/repositories"
	"thai-kitchen/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
	repo   *repositories.OrderRepository
}

func NewOrderController(orders *services.OrderService, repo *repositories.OrderRepository) *OrderController {
	return &OrderController{orders: orders, repo: repo}
}

// CreateOrder godoc
// @Summary Submit an order
// @Description Persist an order and its items atomically, returning the generated order number
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order payload"
// @Success 200 {object} models.OrderReceipt
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Order must include items"})
		return
	}

	receipt, err := ctrl.orders.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Order must include items"})
			return
		}
		// Detail stays server-side; the caller only learns that creation failed.
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// GetActiveOrders godoc
// @Summary List active orders
// @Description All orders not yet served or cancelled
// @Tags Orders
// @Produce json
// @Success 200 {array} models.ActiveOrder
// @Failure 500 {object} models.ErrorResponse
// @Router /orders/active [get]
func (ctrl *OrderController) GetActiveOrders(c *gin.Context) {
	orders, err := ctrl.repo.ListActive(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch active orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch active orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
