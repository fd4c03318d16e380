package routes

import (
	"food-order/handlers"
	"food-order/middleware"
	"food-order/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, cookies sessions.Store) {
	r.GET("/health", h.Health)

	// ── Browser routes (session cookie) ───────────────────────────
	web := r.Group("/")
	web.Use(middleware.LoadIdentity(cookies, h.Store))
	{
		web.GET("/", h.Index)
		web.GET("/register/", h.RegisterForm)
		web.POST("/register/", h.Register)
		web.GET("/login/", h.LoginForm)
		web.POST("/login/", h.Login)
		web.GET("/logout/", h.Logout)
		web.POST("/logout/", h.Logout)
	}

	// ── Customer routes ───────────────────────────────────────────
	customer := web.Group("/")
	customer.Use(middleware.RequireLogin())
	{
		customer.GET("/home/", h.UserHome)
		customer.GET("/order/:id/", h.OrderForm)
		customer.POST("/order/:id/", h.PlaceOrder)
		customer.GET("/my-orders/", h.MyOrders)
	}

	// ── Admin routes ──────────────────────────────────────────────
	admin := web.Group("/")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/admin-dashboard/", h.AdminDashboard)

		admin.GET("/dashboard/add-food/", h.AddFoodForm)
		admin.POST("/dashboard/add-food/", h.AddFood)
		admin.GET("/dashboard/view-foods/", h.ViewFoods)
		admin.GET("/dashboard/edit-food/:id/", h.EditFoodForm)
		admin.POST("/dashboard/edit-food/:id/", h.EditFood)
		admin.POST("/dashboard/delete-food/:id/", h.DeleteFood)

		admin.GET("/dashboard/add-category/", h.AddCategoryForm)
		admin.POST("/dashboard/add-category/", h.AddCategory)
		admin.GET("/dashboard/view-categories/", h.ViewCategories)
		admin.GET("/dashboard/edit-category/:id/", h.EditCategoryForm)
		admin.POST("/dashboard/edit-category/:id/", h.EditCategory)
		admin.POST("/dashboard/delete-category/:id/", h.DeleteCategory)

		admin.GET("/dashboard/add-restaurant/", h.AddRestaurantForm)
		admin.POST("/dashboard/add-restaurant/", h.AddRestaurant)
		admin.GET("/dashboard/view-restaurants/", h.ViewRestaurants)
		admin.GET("/dashboard/edit-restaurant/:id/", h.EditRestaurantForm)
		admin.POST("/dashboard/edit-restaurant/:id/", h.EditRestaurant)
		admin.POST("/dashboard/delete-restaurant/:id/", h.DeleteRestaurant)

		admin.GET("/dashboard/admin/orders/", h.AdminOrders)
		admin.GET("/dashboard/admin/users/", h.AdminUsers)
	}

	// ── JSON API (bearer token) ───────────────────────────────────
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	{
		api.POST("/auth/login", h.APILogin)
		api.GET("/foods", h.APIFoods)
	}

	authed := api.Group("")
	authed.Use(middleware.TokenRequired(h.JWTSecret))
	{
		authed.GET("/orders", h.APIMyOrders)
		authed.POST("/orders", h.APIPlaceOrder)
	}

	apiAdmin := authed.Group("/admin")
	apiAdmin.Use(middleware.AccessRequired(models.AccessAdmin))
	{
		apiAdmin.GET("/orders", h.APIAdminOrders)
		apiAdmin.GET("/users", h.APIAdminUsers)
	}
}
