package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/httpresp"
)

// Fail records err on the context and stops the chain; ErrorHandler does the
// formatting. No handler writes its own error body.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler is the single place errors become responses. Operational
// errors surface their message verbatim; everything else is logged and
// reduced to a generic message. Debug mode attaches the underlying cause.
func ErrorHandler(log *zap.Logger, debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		if ae, ok := httperr.As(last.Err); ok && ae.Operational {
			if ae.Status >= http.StatusInternalServerError {
				log.Error("request failed",
					zap.String("code", ae.Code),
					zap.String("path", c.Request.URL.Path),
					zap.Error(ae.Err),
				)
			}

			resp := httpresp.Envelope{Success: false, Message: ae.Message}
			if debug && ae.Err != nil {
				resp.Error = ae.Err.Error()
			}
			c.JSON(ae.Status, resp)
			return
		}

		log.Error("unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(last.Err),
		)

		resp := httpresp.Envelope{
			Success: false,
			Message: "Something went wrong. Please try again later.",
		}
		if debug {
			resp.Error = last.Err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
