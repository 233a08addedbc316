package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/litreview/internal/observability"
	apperrors "github.com/spec-kit/litreview/pkg/util/errorutil"
)

func TestErrorHandlingMiddleware(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/validation", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("validation failed", map[string]any{"title": "is required"})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unreachable state")
	})

	tests := []struct {
		path    string
		status  int
		code    string
		message string
	}{
		{path: "/validation", status: http.StatusBadRequest, code: apperrors.CodeValidationFailed, message: "validation failed"},
		{path: "/boom", status: http.StatusInternalServerError, code: apperrors.CodeInternal, message: "internal server error"},
		{path: "/panic", status: http.StatusInternalServerError, code: apperrors.CodeInternal, message: "internal server error"},
		{path: "/missing", status: http.StatusNotFound, code: apperrors.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.code, body.Error.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Error.Message)
			}
		})
	}

	snap := metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Errors["/boom|GET|"+apperrors.CodeInternal])
}
