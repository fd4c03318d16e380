package handlers

import (
	"net/http"
	"strings"

	"food-order/models"

	"github.com/gin-gonic/gin"
)

// ── Restaurant Management ────────────────────────────────────────────────────

func (h *Handler) AddRestaurantForm(c *gin.Context) {
	render(c, "restaurant_form.html", gin.H{"Restaurant": models.Restaurant{}})
}

func (h *Handler) AddRestaurant(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	location := strings.TrimSpace(c.PostForm("location"))
	if name == "" || location == "" {
		flashRedirect(c, "error", "Name and location are required.", "/dashboard/add-restaurant/")
		return
	}
	if err := h.Store.CreateRestaurant(c.Request.Context(), &models.Restaurant{Name: name, Location: location}); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-restaurants/")
}

func (h *Handler) ViewRestaurants(c *gin.Context) {
	restaurants, err := h.Store.ListRestaurants(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "view_restaurants.html", gin.H{"Restaurants": restaurants})
}

func (h *Handler) EditRestaurantForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Store.RestaurantByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "restaurant_form.html", gin.H{"Restaurant": restaurant})
}

func (h *Handler) EditRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Store.RestaurantByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))
	location := strings.TrimSpace(c.PostForm("location"))
	if name == "" || location == "" {
		flashRedirect(c, "error", "Name and location are required.", c.Request.URL.Path)
		return
	}
	restaurant.Name, restaurant.Location = name, location
	if err := h.Store.UpdateRestaurant(c.Request.Context(), restaurant); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-restaurants/")
}

// DeleteRestaurant also removes the restaurant's food items and their orders
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteRestaurant(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-restaurants/")
}
