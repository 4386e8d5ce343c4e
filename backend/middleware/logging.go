package middleware

import (
	"log"
	"time"

	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// LoggingMiddleware writes one line per request. Install it after requestid
// so the id is available.
func LoggingMiddleware(logger *log.Logger, colors bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// let the app error handler write the response before we read the status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		m, s, reset := utils.Colorize(colors, c.Method(), status)
		id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)

		logger.Printf("%s %s %s%s%s %s %s%d%s %s",
			id,
			c.IP(),
			m, c.Method(), reset,
			c.Path(),
			s, status, reset,
			time.Since(start),
		)

		return nil
	}
}
