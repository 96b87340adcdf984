package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"homerepair/internal/auth"
	"homerepair/internal/middleware"
)

const testTimeout = time.Second

var testTokens = auth.NewTokenService("handler-test-secret", time.Hour)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func guard() gin.HandlerFunc {
	return middleware.AuthGuard(testTokens, nil)
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := testTokens.Issue(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return tok
}

type request struct {
	method string
	path   string
	body   interface{}
	token  string
}

func perform(t *testing.T, r http.Handler, req request) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	switch b := req.body.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case string:
		body = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	httpReq := httptest.NewRequest(req.method, req.path, body)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.AddCookie(&http.Cookie{Name: auth.CookieName, Value: req.token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httpReq)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
