package handlers

import (
	"net/http"
	"strings"

	"food-order/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddCategoryForm(c *gin.Context) {
	render(c, "category_form.html", gin.H{"Category": models.Category{}})
}

func (h *Handler) AddCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		flashRedirect(c, "error", "Category name is required.", "/dashboard/add-category/")
		return
	}
	if err := h.Store.CreateCategory(c.Request.Context(), &models.Category{Name: name}); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-categories/")
}

func (h *Handler) ViewCategories(c *gin.Context) {
	categories, err := h.Store.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "view_categories.html", gin.H{"Categories": categories})
}

func (h *Handler) EditCategoryForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.Store.CategoryByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "category_form.html", gin.H{"Category": category})
}

func (h *Handler) EditCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.Store.CategoryByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		flashRedirect(c, "error", "Category name is required.", c.Request.URL.Path)
		return
	}
	category.Name = name
	if err := h.Store.UpdateCategory(c.Request.Context(), category); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-categories/")
}

// DeleteCategory also removes every food item filed under it
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteCategory(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-categories/")
}
