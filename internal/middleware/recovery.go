package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/Misha2007/smart-city-event-map/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a logged 500. http.ErrAbortHandler is
// passed through so net/http can drop the connection.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			ctx := c.Request.Context()
			log.LogAttrs(ctx, logger.ErrorLevel, "panic recovered",
				logger.String("request_id", logger.GetRequestID(ctx)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse{Error: "internal server error"},
			)
		}()

		c.Next()
	}
}
