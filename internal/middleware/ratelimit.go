package middleware

import (
	"net/http"
	"strconv"
	"time"

	"svg-plotter/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimit 返回一个 Gin 中间件，用于基于客户端 IP 地址进行固定窗口限流。
// redisClient: 用于存储计数器的 Redis 客户端实例，必须提供。
// keyPrefix: 计数器 key 的前缀。
// maxRequests: 在指定时间窗口内允许的最大请求数。
// window: 速率限制的时间窗口。
func RateLimit(redisClient redis.Cmdable, keyPrefix string, maxRequests int, window time.Duration) gin.HandlerFunc {
	if redisClient == nil {
		panic("Redis client cannot be nil for RateLimit middleware")
	}
	if maxRequests <= 0 {
		panic("maxRequests must be positive for RateLimit middleware")
	}
	if window <= 0 {
		panic("window duration must be positive for RateLimit middleware")
	}

	return func(c *gin.Context) {
		key := keyPrefix + "ratelimit:" + c.ClientIP()
		ctx := c.Request.Context()

		// INCR 与 EXPIRE 放在同一个 Pipeline 中
		pipe := redisClient.Pipeline()
		incrCmd := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			logrus.WithError(err).Error("RateLimit: Redis Pipeline failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorDTO{Message: "Rate limiting error"})
			return
		}

		count, err := incrCmd.Result()
		if err != nil {
			logrus.WithError(err).Error("RateLimit: Failed to get INCR result after successful Exec")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorDTO{Message: "Rate limiting error"})
			return
		}

		remaining := int64(maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(maxRequests) {
			logrus.WithField("client_ip", c.ClientIP()).Warn("RateLimit: Too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorDTO{Message: "Too many requests"})
			return
		}

		c.Next()
	}
}
