package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
)

func TestErrorHandler_Mapping(t *testing.T) {
	configs.SilenceLogger()

	cases := []struct {
		name string
		err  error
		code int
		ec   string
	}{
		{"fiber error", fiber.NewError(fiber.StatusBadRequest, "month tidak valid"), 400, "BAD_REQUEST"},
		{"not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), 404, "NOT_FOUND"},
		{"unique", &pgconn.PgError{Code: "23505"}, 409, "CONFLICT"},
		{"other", errors.New("boom"), 500, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
			assert.Equal(t, tc.code, StatusOf(tc.err))

			raw, _ := io.ReadAll(resp.Body)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.ec, body.ErrorCode)
		})
	}
}
