package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	t.Run(`under limit`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("name: a")))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`over limit`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("name: interview template")))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run(`empty body`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
