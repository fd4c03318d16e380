package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food-order/media"
	"food-order/middleware"
	"food-order/services"
	"food-order/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"
)

// Handler carries the dependencies shared by every route
type Handler struct {
	Store     *store.Store
	Auth      *services.AuthService
	Orders    *services.OrderService
	Media     *media.Storage
	JWTSecret []byte
}

// render executes a page template with the values every layout needs.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Identity"] = middleware.CurrentIdentity(c)
	data["Flashes"] = middleware.TakeFlashes(c)
	data["CSRFField"] = csrf.TemplateField(c.Request)
	c.HTML(http.StatusOK, name, data)
}

// flashRedirect shows msg on the next page and redirects there.
func flashRedirect(c *gin.Context, kind, msg, location string) {
	middleware.Flash(c, kind, msg)
	c.Redirect(http.StatusFound, location)
}

// fail turns a store or service error into a 404 or a 500.
func fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, "Not Found")
		c.Abort()
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}

// pathID parses a positive integer path parameter. Anything else is a 404.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusNotFound, "Not Found")
		c.Abort()
		return 0, false
	}
	return uint(id), true
}
