package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const CookieName = "token"

// CookiePolicy decides how the token cookie travels. Cross-site production
// frontends need Secure + SameSite=None; local development cannot use Secure
// over plain http.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

func NewCookiePolicy(production bool, maxAge time.Duration) CookiePolicy {
	if production {
		return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode, MaxAge: maxAge}
	}
	return CookiePolicy{Secure: false, SameSite: http.SameSiteStrictMode, MaxAge: maxAge}
}

func (p CookiePolicy) Set(c *gin.Context, token string) {
	c.SetSameSite(p.SameSite)
	c.SetCookie(CookieName, token, int(p.MaxAge.Seconds()), "/", "", p.Secure, true)
}

func (p CookiePolicy) Clear(c *gin.Context) {
	c.SetSameSite(p.SameSite)
	c.SetCookie(CookieName, "", -1, "/", "", p.Secure, true)
}
