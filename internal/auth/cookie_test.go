package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordCookie(t *testing.T, write func(c *gin.Context)) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/jwt", nil)

	write(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestCookiePolicyDevelopment(t *testing.T) {
	policy := NewCookiePolicy(false, time.Hour)
	cookie := recordCookie(t, func(c *gin.Context) { policy.Set(c, "abc") })

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "abc", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestCookiePolicyProduction(t *testing.T) {
	policy := NewCookiePolicy(true, time.Hour)
	cookie := recordCookie(t, func(c *gin.Context) { policy.Set(c, "abc") })

	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestCookiePolicyClear(t *testing.T) {
	policy := NewCookiePolicy(false, time.Hour)
	cookie := recordCookie(t, func(c *gin.Context) { policy.Clear(c) })

	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
