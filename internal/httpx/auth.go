package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
)

type Policy int

const (
	Public Policy = iota
	// User requires a valid bearer token.
	User
	// Owner requires a token whose subject is the :userId path param, or an admin.
	Owner
	Admin
)

const sessionKey = "session"

var (
	errNoToken      = apperr.New(apperr.KindUnauthorized, "No token provided")
	errInvalidToken = apperr.New(apperr.KindUnauthorized, "Invalid token")
	errAdminOnly    = apperr.Forbidden("Admin access required")
	errNotOwner     = apperr.Forbidden("Access denied")
)

type TokenVerifier interface {
	Verify(token string) (auth.Session, error)
}

// Authorize enforces p before the handler runs and stores the verified
// session on the context for SessionFrom.
func Authorize(tokens TokenVerifier, p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p == Public {
			c.Next()
			return
		}

		raw, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			Abort(c, errNoToken)
			return
		}
		sess, err := tokens.Verify(raw)
		if err != nil {
			Abort(c, errInvalidToken)
			return
		}

		switch p {
		case Owner:
			if !sess.CanActFor(c.Param("userId")) {
				Abort(c, errNotOwner)
				return
			}
		case Admin:
			if !sess.IsAdmin() {
				Abort(c, errAdminOnly)
				return
			}
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session stored by Authorize, or the zero
// Session on public routes.
func SessionFrom(c *gin.Context) auth.Session {
	s, _ := sessionOf(c)
	return s
}

func sessionOf(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.Session{}, false
	}
	s, ok := v.(auth.Session)
	return s, ok
}

func bearer(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return "", false
	}
	return fields[1], true
}
