package middleware

import (
	"net/http"

	"food-order/models"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity is the authenticated caller of the current request
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

// Can reports whether the caller may reach the given access level.
func (id *Identity) Can(need models.Access) bool {
	return id != nil && models.Authorize(id.Role, need)
}

// IsAdmin is shorthand used by templates.
func (id *Identity) IsAdmin() bool {
	return id.Can(models.AccessAdmin)
}

func setIdentity(c *gin.Context, id *Identity) {
	c.Set(identityKey, id)
}

// CurrentIdentity returns the caller, or nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}

// RequireLogin redirects anonymous callers to the login page.
func RequireLogin() gin.HandlerFunc {
	return requireAccess(models.AccessCustomer, redirectToLogin)
}

// RequireAdmin redirects everyone without admin access to the login page.
func RequireAdmin() gin.HandlerFunc {
	return requireAccess(models.AccessAdmin, redirectToLogin)
}

func requireAccess(need models.Access, deny gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).Can(need) {
			deny(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login/")
}
