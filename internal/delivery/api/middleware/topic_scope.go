package middleware

import (
	deliverycontext "bookclub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ScopeTopic tags the request context and its logger with the :id topic parameter.
func ScopeTopic(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if topicID := c.Param("id"); topicID != "" {
			ctx := deliverycontext.WithTopicID(c.Request().Context(), topicID)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
