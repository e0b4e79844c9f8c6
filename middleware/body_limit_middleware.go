package middleware

import (
	"fmt"
	"strconv"

	apimodels "interview-scorer-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit отклоняет запросы с Content-Length больше limit до чтения тела
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > limit {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(
					fmt.Sprintf("Слишком большой запрос. Максимальный размер: %d байт", limit)))
			}
		}
		return c.Next()
	}
}
