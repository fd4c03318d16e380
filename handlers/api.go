package handlers

import (
	"errors"
	"net/http"

	"food-order/middleware"
	"food-order/models"
	"food-order/services"
	"food-order/store"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PlaceOrderRequest struct {
	FoodID   uint `json:"food_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"omitempty,min=1"`
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	}
}

// APILogin authenticates a user and returns a JWT
func (h *Handler) APILogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		apiFail(c, err)
		return
	}

	token, err := middleware.GenerateToken(user, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userJSON(user),
	})
}

// APIFoods returns the orderable catalog
func (h *Handler) APIFoods(c *gin.Context) {
	foods, err := h.Store.ListAvailableFoodItems(c.Request.Context())
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

// APIPlaceOrder creates an order for the token holder
func (h *Handler) APIPlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	caller := middleware.CurrentIdentity(c)
	order, err := h.Orders.PlaceOrder(c.Request.Context(), caller.UserID, req.FoodID, req.Quantity)
	var ue services.UserError
	switch {
	case errors.As(err, &ue):
		c.JSON(http.StatusBadRequest, gin.H{"error": ue.Error()})
	case err != nil:
		apiFail(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// APIMyOrders returns the token holder's orders
func (h *Handler) APIMyOrders(c *gin.Context) {
	caller := middleware.CurrentIdentity(c)
	orders, err := h.Store.OrdersForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// APIAdminOrders returns all orders, admin only
func (h *Handler) APIAdminOrders(c *gin.Context) {
	orders, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// APIAdminUsers returns all users, admin only
func (h *Handler) APIAdminUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Food Order",
	})
}

func apiFail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
