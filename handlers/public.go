package handlers

import (
	"github.com/gin-gonic/gin"
)

// UserHome lists the catalog for a logged in customer
func (h *Handler) UserHome(c *gin.Context) {
	foods, err := h.Store.ListFoodItems(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "user_home.html", gin.H{"Foods": foods})
}
