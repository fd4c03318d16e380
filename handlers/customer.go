package handlers

import (
	"errors"

	"food-order/middleware"
	"food-order/services"

	"github.com/gin-gonic/gin"
)

// OrderForm shows a single food item with a quantity box
func (h *Handler) OrderForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	food, err := h.Store.FoodItemByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "order_now.html", gin.H{"Food": food})
}

// PlaceOrder records an order at the current unit price
func (h *Handler) PlaceOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller := middleware.CurrentIdentity(c)

	quantity, err := services.ParseQuantity(c.PostForm("quantity"))
	if err != nil {
		flashRedirect(c, "error", err.Error(), c.Request.URL.Path)
		return
	}

	_, err = h.Orders.PlaceOrder(c.Request.Context(), caller.UserID, id, quantity)
	switch {
	case errors.Is(err, services.ErrFoodUnavailable):
		flashRedirect(c, "error", err.Error(), "/home/")
	case err != nil:
		fail(c, err)
	default:
		flashRedirect(c, "success", "Your order has been placed successfully!", "/home/")
	}
}

// MyOrders returns the caller's own orders, newest first
func (h *Handler) MyOrders(c *gin.Context) {
	caller := middleware.CurrentIdentity(c)
	orders, err := h.Store.OrdersForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "my_orders.html", gin.H{"Orders": orders})
}
