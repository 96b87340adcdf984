package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHome(t *testing.T) {
	r := newTestRouter()
	r.GET("/", Home())

	rec := perform(t, r, request{method: http.MethodGet, path: "/"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Home repair server is running", rec.Body.String())
}

func TestHealth(t *testing.T) {
	healthy := newTestRouter()
	healthy.GET("/health", Health(pingerFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})))
	rec := perform(t, healthy, request{method: http.MethodGet, path: "/health"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := newTestRouter()
	down.GET("/health", Health(pingerFunc(func(context.Context) error { return errors.New("no primary") })))
	rec = perform(t, down, request{method: http.MethodGet, path: "/health"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","message":"database unavailable"}`, rec.Body.String())
}
