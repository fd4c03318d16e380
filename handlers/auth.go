package handlers

import (
	"errors"
	"net/http"

	"food-order/middleware"
	"food-order/models"
	"food-order/services"

	"github.com/gin-gonic/gin"
)

// Index is the public landing page
func (h *Handler) Index(c *gin.Context) {
	render(c, "index.html", nil)
}

func (h *Handler) RegisterForm(c *gin.Context) {
	render(c, "register.html", nil)
}

// Register creates a customer account from the sign-up form
func (h *Handler) Register(c *gin.Context) {
	_, err := h.Auth.Register(c.Request.Context(), services.RegisterInput{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		Password1: c.PostForm("password1"),
		Password2: c.PostForm("password2"),
	})
	var ue services.UserError
	switch {
	case errors.As(err, &ue):
		flashRedirect(c, "error", ue.Error(), "/register/")
	case err != nil:
		fail(c, err)
	default:
		flashRedirect(c, "success", "Account created successfully. Please login.", "/login/")
	}
}

func (h *Handler) LoginForm(c *gin.Context) {
	render(c, "login.html", nil)
}

// Login checks credentials and sends admins and customers to their own landing pages
func (h *Handler) Login(c *gin.Context) {
	user, err := h.Auth.Authenticate(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if errors.Is(err, services.ErrInvalidCredentials) {
		flashRedirect(c, "error", services.ErrInvalidCredentials.Error(), "/login/")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	if err := middleware.StartSession(c, user); err != nil {
		fail(c, err)
		return
	}

	if models.Authorize(user.Role, models.AccessAdmin) {
		c.Redirect(http.StatusFound, "/admin-dashboard/")
		return
	}
	c.Redirect(http.StatusFound, "/home/")
}

// Logout ends the session
func (h *Handler) Logout(c *gin.Context) {
	if err := middleware.EndSession(c); err != nil {
		fail(c, err)
		return
	}
	flashRedirect(c, "success", "You have been logged out successfully.", "/")
}
