package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	enabled bool
	err     error
}

func (s stubPinger) Enabled() bool              { return s.enabled }
func (s stubPinger) Ping(context.Context) error { return s.err }

func readyStatus(t *testing.T, p Pinger) (int, string) {
	t.Helper()
	app := fiber.New()
	h := NewHealthHandler("svc", "v1", p)
	app.Get("/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestReadyRedisOK(t *testing.T) {
	status, body := readyStatus(t, stubPinger{enabled: true})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"redis":"ok"`)
}

func TestReadyRedisDown(t *testing.T) {
	status, body := readyStatus(t, stubPinger{enabled: true, err: errors.New("connection refused")})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, body, "connection refused")
}

func TestReadyRedisDisabled(t *testing.T) {
	status, _ := readyStatus(t, stubPinger{enabled: false})
	assert.Equal(t, http.StatusOK, status)
}
