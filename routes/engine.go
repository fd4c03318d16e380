package routes

import (
	"fmt"

	"food-order/handlers"
	"food-order/middleware"
	"food-order/templates"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// NewEngine builds the gin engine with templates, static media and every route.
func NewEngine(h *handlers.Handler, cookies sessions.Store) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.Static("/media", h.Media.Dir)

	SetupRoutes(r, h, cookies)
	return r, nil
}
