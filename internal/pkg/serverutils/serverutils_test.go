package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentoria-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func decode(t *testing.T, resp *http.Response) Response[json.RawMessage] {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out Response[json.RawMessage]
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/", JwtMiddleware(testSecret), RequireRole("mentor"), handler)
	return app
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := SignToken(testSecret, uuid.New(), role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestJwtMiddleware(t *testing.T) {
	app := newApp(func(ctx *fiber.Ctx) error {
		id, err := CurrentUserID(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(SuccessResponse("ok", id.String()))
	})

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.False(t, decode(t, resp).Success)
	})

	t.Run("bad signature", func(t *testing.T) {
		token, _ := SignToken("other", uuid.New(), "mentor", time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", bearer(t, "mentee"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", bearer(t, "mentor"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, decode(t, resp).Success)
	})
}

func TestErrorHandlerMapsErrors(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
	}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"app error", NewConflictError("slot already held"), http.StatusConflict},
		{"wrapped app error", errors.Join(errors.New("ctx"), NewNotFoundError("missing")), http.StatusNotFound},
		{"validation", ValidateRequest(request{}), http.StatusBadRequest},
		{"fiber error", fiber.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"unknown", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			out := decode(t, resp)
			assert.False(t, out.Success)
			assert.NotEmpty(t, out.Message)
		})
	}
}
