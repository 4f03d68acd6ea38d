package webhook_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"search-sync/feature/webhook"
	"search-sync/feature/webhook/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(cfg webhook.Config, dispatcher webhook.Dispatcher) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := webhook.NewHandler(cfg, dispatcher, zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func syncRequest(secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/sync", nil)
	if secret != "" {
		req.Header.Set(webhook.SecretHeader, secret)
	}
	return req
}

func TestHandleSyncDispatches(t *testing.T) {
	dispatcher := new(mocks.Dispatcher)
	dispatcher.On("DispatchSync", mock.Anything, "webhook").Return(nil)

	app := newApp(webhook.Config{Secret: "s3cret"}, dispatcher)
	resp, err := app.Test(syncRequest("s3cret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "ok", payload["status"])
	assert.NotEmpty(t, payload["triggeredAt"])

	dispatcher.AssertExpectations(t)
}

func TestHandleSyncSecretMismatch(t *testing.T) {
	dispatcher := new(mocks.Dispatcher)

	app := newApp(webhook.Config{Secret: "s3cret"}, dispatcher)

	for _, secret := range []string{"wrong", ""} {
		resp, err := app.Test(syncRequest(secret))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	// No dispatch event is emitted on a rejected request
	dispatcher.AssertNotCalled(t, "DispatchSync", mock.Anything, mock.Anything)
}

func TestHandleSyncWrongMethod(t *testing.T) {
	dispatcher := new(mocks.Dispatcher)
	app := newApp(webhook.Config{Secret: "s3cret"}, dispatcher)

	// Non-POST is rejected without secret inspection
	req := httptest.NewRequest(http.MethodGet, "/webhook/sync", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	dispatcher.AssertNotCalled(t, "DispatchSync", mock.Anything, mock.Anything)
}

func TestHandleSyncDispatchFailure(t *testing.T) {
	dispatcher := new(mocks.Dispatcher)
	dispatcher.On("DispatchSync", mock.Anything, "webhook").Return(errors.New("api down"))

	app := newApp(webhook.Config{Secret: "s3cret"}, dispatcher)
	resp, err := app.Test(syncRequest("s3cret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleSyncMissingSecretConfig(t *testing.T) {
	dispatcher := new(mocks.Dispatcher)

	app := newApp(webhook.Config{}, dispatcher)
	resp, err := app.Test(syncRequest("anything"))
	require.NoError(t, err)

	// Misconfiguration is a server error, never a silent accept
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	dispatcher.AssertNotCalled(t, "DispatchSync", mock.Anything, mock.Anything)
}
