package middleware

import (
	"net/http"

	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the request header naming a retry-safe operation
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength bounds the header value
const MaxIdempotencyKeyLength = 255

// Idempotency rejects a repeated Idempotency-Key on the routes it guards.
// The key is scoped to the request path. A request that ends with status
// 400 or above releases its key so the client can retry. Requests without
// the header pass through, and a failing store degrades to processing.
func Idempotency(store shared.IdempotencyStore, cfg shared.IdempotencyConfig, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("idempotency")

	return func(c *gin.Context) {
		if !cfg.Enabled || store == nil {
			c.Next()
			return
		}
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidInput,
				"Idempotency-Key must be at most 255 characters")
			return
		}

		ctx := c.Request.Context()
		scoped := "http:" + c.Request.URL.Path + ":" + key
		marked, err := store.MarkProcessed(ctx, scoped, cfg.TTL)
		if err != nil {
			logger.Warn("idempotency store unavailable, processing request",
				zap.String("key", scoped),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !marked {
			logger.Info("duplicate request rejected", zap.String("key", scoped))
			abortWithError(c, http.StatusConflict, dto.ErrCodeDuplicateRequest, shared.ErrDuplicateRequest.Message)
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(ctx, scoped); err != nil {
				logger.Warn("failed to release idempotency key",
					zap.String("key", scoped),
					zap.Error(err),
				)
			}
		}
	}
}
