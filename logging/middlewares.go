package logging

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request.id"
	loggerContextKey    = "request.logger"
)

// RequestID tags the request with an id taken from the X-Request-ID header or a new uuid.
// A logger carrying the id is stored on the context for the handlers.
func RequestID(logger *zap.Logger) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDContextKey, requestID)
		ctx.Set(loggerContextKey, logger.With(zap.String("request.id", requestID)))
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}

// Logger writes one access log line per request once the handlers are done.
func Logger() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		start := time.Now()
		ctx.Next()

		fields := []zap.Field{
			zap.String("request.method", ctx.Request.Method),
			zap.String("request.path", ctx.Request.URL.Path),
			zap.String("request.ip", ctx.ClientIP()),
			zap.String("request.agent", ctx.Request.UserAgent()),
			zap.Int("response.status", ctx.Writer.Status()),
			zap.Int("response.size", ctx.Writer.Size()),
			zap.Duration("request.duration", time.Since(start)),
		}

		logger := FromContext(ctx)
		if len(ctx.Errors) > 0 {
			logger.Error("request", append(fields, zap.String("errors", ctx.Errors.String()))...)
			return
		}

		logger.Info("request", fields...)
	}
}

// Recovery turns a panic into a 500 response with the usual message envelope.
func Recovery() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		defer func() {
			if r := recover(); r != nil {
				FromContext(ctx).Error("panic occurred", zap.Any("error", r), zap.Stack("skt"))
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to process the request"})
			}
		}()

		ctx.Next()
	}
}

// FromContext returns the request scoped logger, or a no-op logger when RequestID did not run.
func FromContext(ctx *gin.Context) *zap.Logger {

	if value, ok := ctx.Get(loggerContextKey); ok {
		if logger, ok := value.(*zap.Logger); ok {
			return logger
		}
	}

	return zap.NewNop()
}

func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDContextKey)
}
