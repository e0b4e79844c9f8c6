package middleware

import (
	"fmt"

	apimodels "interview-scorer-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ErrNotify отправляет сведения об ответах 5xx на addr
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if addr == "" || statusCode < fiber.StatusInternalServerError {
			return err
		}

		body := c.Response().Body()
		var data apimodels.Response
		if unmErr := c.App().Config().JSONDecoder(body, &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}

		method := c.Method()
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}

		msg := data.Message
		if msg == "" {
			msg = string(body)
		}

		go func() {
			payload := fmt.Sprintf(
				`{"service":"interview-scorer","code":%d,"method":%q,"path":%q,"error":%q}`,
				statusCode, method, path, msg)
			agent := fiber.Post(addr)
			agent.ContentType(fiber.MIMEApplicationJSON)
			agent.BodyString(payload)
			if _, _, errs := agent.Bytes(); len(errs) != 0 {
				log.WithError(errs[0]).Warn("error sending error notification")
			}
		}()
		return err
	}
}
