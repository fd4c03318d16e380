package handlers

import (
	"github.com/gin-gonic/gin"
)

// AdminDashboard shows catalog and user counts
func (h *Handler) AdminDashboard(c *gin.Context) {
	counts, err := h.Store.Counts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "admin_dashboard.html", gin.H{"Counts": counts})
}

// AdminOrders lists every order with its user, food and restaurant
func (h *Handler) AdminOrders(c *gin.Context) {
	orders, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "admin_orders.html", gin.H{"Orders": orders})
}

// AdminUsers lists every account, newest joined first
func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "admin_users.html", gin.H{"Users": users})
}
