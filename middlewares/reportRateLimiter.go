package middlewares

import (
	"context"
	"net/http"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const reportLimitWindow = 24 * time.Hour

// RateLimitData tells the client how long until the window resets.
type RateLimitData struct {
	RetryAfter float64 `json:"retry_after"`
}

// ReportRateLimiter caps report submissions per user over a rolling 24h
// window that starts with the user's first submission. Submissions the
// handler rejects give their slot back.
func ReportRateLimiter(client redis.Cmdable, prefix string, limit int, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)
		if userID == "" {
			abortWithError(c, apperrors.NewUnauthenticated("Authentication required"))
			return
		}

		ctx := c.Request.Context()
		userKey := prefix + ":" + userID

		count, err := client.Incr(ctx, userKey).Result()
		if err != nil {
			abortWithError(c, apperrors.NewInternal("Rate limiter unavailable", err))
			return
		}

		// first increment opens the window
		if count == 1 {
			if err := client.Expire(ctx, userKey, reportLimitWindow).Err(); err != nil {
				abortWithError(c, apperrors.NewInternal("Rate limiter unavailable", err))
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := client.TTL(ctx, userKey).Result()
			abortWithError(c, apperrors.NewTooManyRequests("Daily report limit reached. Please try again later.").
				WithData(RateLimitData{RetryAfter: retryAfter.Seconds()}))
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			if err := client.Decr(context.WithoutCancel(ctx), userKey).Err(); err != nil {
				log.WithContext(ctx).WithError(err).WithField("key", userKey).Warn("could not refund report slot")
			}
		}
	}
}
