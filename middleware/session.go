package middleware

import (
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"food-order/models"
	"food-order/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	sessionName = "foodorder_session"
	sessionKey  = "session"
	usersKey    = "session_users"
	tokenKey    = "token"
	sessionTTL  = 14 * 24 * time.Hour
)

func init() {
	gob.Register(FlashMessage{})
}

// FlashMessage is a one-shot notice shown on the next rendered page.
type FlashMessage struct {
	Type    string // "success" or "error"
	Message string
}

// NewCookieStore builds the signed session cookie store.
func NewCookieStore(key []byte, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore(key)
	cs.Options.HttpOnly = true
	cs.Options.Secure = secure
	cs.Options.SameSite = http.SameSiteLaxMode
	cs.Options.Path = "/"
	cs.Options.MaxAge = int(sessionTTL.Seconds())
	return cs
}

// LoadIdentity resolves the session cookie into an Identity. The cookie only
// names a server-side session; the session and user rows are re-read on every
// request so logouts, role changes and deletions apply immediately.
func LoadIdentity(cookies sessions.Store, users *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := cookies.Get(c.Request, sessionName)
		if err != nil {
			log.Debug().Err(err).Msg("discarding unreadable session")
		}
		c.Set(sessionKey, sess)
		c.Set(usersKey, users)

		if token, ok := sess.Values[tokenKey].(string); ok {
			user, err := users.SessionUser(c.Request.Context(), token)
			switch {
			case err == nil:
				setIdentity(c, &Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
			case errors.Is(err, store.ErrNotFound):
				delete(sess.Values, tokenKey)
			default:
				_ = c.AbortWithError(http.StatusInternalServerError, err)
				return
			}
		}
		c.Next()
	}
}

func session(c *gin.Context) (*sessions.Session, *store.Store) {
	v, _ := c.Get(sessionKey)
	sess, _ := v.(*sessions.Session)
	v, _ = c.Get(usersKey)
	users, _ := v.(*store.Store)
	return sess, users
}

// StartSession logs the user in for subsequent requests.
func StartSession(c *gin.Context, user *models.User) error {
	sess, users := session(c)
	if sess == nil || users == nil {
		return errors.New("session middleware not installed")
	}
	if token, ok := sess.Values[tokenKey].(string); ok {
		if err := users.DeleteSession(c.Request.Context(), token); err != nil {
			return err
		}
	}
	row, err := users.CreateSession(c.Request.Context(), user.ID, sessionTTL)
	if err != nil {
		return err
	}
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Values[tokenKey] = row.Token
	setIdentity(c, &Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	return sess.Save(c.Request, c.Writer)
}

// EndSession destroys the server-side session so the cookie stops working
// everywhere it was copied. Pending flashes survive.
func EndSession(c *gin.Context) error {
	sess, users := session(c)
	if sess == nil {
		return nil
	}
	if token, ok := sess.Values[tokenKey].(string); ok && users != nil {
		if err := users.DeleteSession(c.Request.Context(), token); err != nil {
			return err
		}
	}
	delete(sess.Values, tokenKey)
	c.Set(identityKey, (*Identity)(nil))
	return sess.Save(c.Request, c.Writer)
}

// Flash queues a message and persists it before the response is written.
func Flash(c *gin.Context, kind, msg string) {
	sess, _ := session(c)
	if sess == nil {
		return
	}
	sess.AddFlash(FlashMessage{Type: kind, Message: msg})
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to save flash message")
	}
}

// TakeFlashes pops every pending flash message.
func TakeFlashes(c *gin.Context) []FlashMessage {
	sess, _ := session(c)
	if sess == nil {
		return nil
	}
	var out []FlashMessage
	for _, f := range sess.Flashes() {
		if fm, ok := f.(FlashMessage); ok {
			out = append(out, fm)
		}
	}
	if len(out) > 0 {
		if err := sess.Save(c.Request, c.Writer); err != nil {
			log.Error().Err(err).Msg("failed to clear flash messages")
		}
	}
	return out
}
