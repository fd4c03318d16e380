package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"food-order/media"
	"food-order/models"
	"food-order/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var maxPrice = decimal.NewFromInt(100000) // decimal(7,2)

// foodFormError is a validation failure shown back on the food form.
type foodFormError string

func (e foodFormError) Error() string { return string(e) }

// bindFood copies the submitted food form onto f.
func (h *Handler) bindFood(c *gin.Context, f *models.FoodItem) error {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		return foodFormError("Food name is required.")
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category"), 10, 64)
	if err != nil {
		return foodFormError("Choose a category.")
	}
	if _, err := h.Store.CategoryByID(c.Request.Context(), uint(categoryID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return foodFormError("Choose a category.")
		}
		return err
	}

	restaurantID, err := strconv.ParseUint(c.PostForm("restaurant"), 10, 64)
	if err != nil {
		return foodFormError("Choose a restaurant.")
	}
	if _, err := h.Store.RestaurantByID(c.Request.Context(), uint(restaurantID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return foodFormError("Choose a restaurant.")
		}
		return err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("price")))
	if err != nil || price.IsNegative() || price.GreaterThanOrEqual(maxPrice) || !price.Equal(price.Round(2)) {
		return foodFormError("Enter a valid price, for example 9.99.")
	}

	f.Name = name
	f.CategoryID = uint(categoryID)
	f.RestaurantID = uint(restaurantID)
	f.Description = strings.TrimSpace(c.PostForm("description"))
	f.Price = price
	return nil
}

// saveUpload stores the "image" file if one was submitted. It returns "" when
// the form carried no file, including urlencoded forms.
func (h *Handler) saveUpload(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", foodFormError("Could not read the uploaded image.")
	}
	ref, err := h.Media.SaveImage(fh)
	if errors.Is(err, media.ErrUnsupportedType) {
		return "", foodFormError("Upload a JPG, PNG, GIF or WEBP image.")
	}
	return ref, err
}

func (h *Handler) foodForm(c *gin.Context, food *models.FoodItem) {
	ctx := c.Request.Context()
	categories, err := h.Store.ListCategories(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	restaurants, err := h.Store.ListRestaurants(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "food_form.html", gin.H{
		"Food":        food,
		"Categories":  categories,
		"Restaurants": restaurants,
	})
}

func (h *Handler) AddFoodForm(c *gin.Context) {
	h.foodForm(c, &models.FoodItem{IsAvailable: true})
}

// AddFood creates a food item; new items start out available
func (h *Handler) AddFood(c *gin.Context) {
	food := models.FoodItem{IsAvailable: true}
	if !h.handleFoodErr(c, h.bindFood(c, &food), "/dashboard/add-food/") {
		return
	}
	ref, err := h.saveUpload(c)
	if !h.handleFoodErr(c, err, "/dashboard/add-food/") {
		return
	}
	food.Image = ref

	if err := h.Store.CreateFoodItem(c.Request.Context(), &food); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin-dashboard/")
}

func (h *Handler) ViewFoods(c *gin.Context) {
	foods, err := h.Store.ListFoodItems(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "view_foods.html", gin.H{"Foods": foods})
}

func (h *Handler) EditFoodForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	food, err := h.Store.FoodItemByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	h.foodForm(c, food)
}

// EditFood overwrites the item. The image only changes when a new one is uploaded.
func (h *Handler) EditFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	food, err := h.Store.FoodItemByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	back := c.Request.URL.Path
	if !h.handleFoodErr(c, h.bindFood(c, food), back) {
		return
	}
	food.IsAvailable = c.PostForm("is_available") == "on"

	ref, err := h.saveUpload(c)
	if !h.handleFoodErr(c, err, back) {
		return
	}
	old := food.Image
	if ref != "" {
		food.Image = ref
	}

	if err := h.Store.UpdateFoodItem(c.Request.Context(), food); err != nil {
		fail(c, err)
		return
	}
	if ref != "" && old != "" {
		if err := h.Media.Remove(old); err != nil {
			log.Warn().Err(err).Str("image", old).Msg("could not remove replaced image")
		}
	}
	c.Redirect(http.StatusFound, "/dashboard/view-foods/")
}

// DeleteFood removes the item and its orders
func (h *Handler) DeleteFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteFoodItem(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/view-foods/")
}

// handleFoodErr reports whether the handler may continue.
func (h *Handler) handleFoodErr(c *gin.Context, err error, back string) bool {
	if err == nil {
		return true
	}
	var fe foodFormError
	if errors.As(err, &fe) {
		flashRedirect(c, "error", fe.Error(), back)
	} else {
		fail(c, err)
	}
	return false
}
