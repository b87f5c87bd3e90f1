package helper

import (
	"context"
	"strings"
	"sync"
	"time"
	"travel_manager/config"
	"travel_manager/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// One-shot notices shown on the next dashboard render, keyed by a
// session cookie. Redis being down degrades to "no notice", never an
// error in the request path.

var (
	flashClient *redis.Client
	flashOnce   sync.Once
)

const flashCookie = "rs_session"

func flashRedis() *redis.Client {
	flashOnce.Do(func() {
		flashClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		})
	})
	return flashClient
}

func sessionId(c *fiber.Ctx) string {
	sid := c.Cookies(flashCookie)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     flashCookie,
			Value:    sid,
			HTTPOnly: true,
			Path:     "/",
		})
	}
	return sid
}

// SetFlash queues a notice for the session. Level is "success" or "error".
func SetFlash(c *fiber.Ctx, level, message string) {
	sid := sessionId(c)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := flashRedis().Set(ctx, "flash:"+sid, level+"|"+message, 5*time.Minute).Err(); err != nil {
		logger.Error("flash set failed", err)
	}
}

// PopFlash reads and clears the pending notice, if any.
func PopFlash(c *fiber.Ctx) (string, string) {
	sid := c.Cookies(flashCookie)
	if sid == "" {
		return "", ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	val, err := flashRedis().GetDel(ctx, "flash:"+sid).Result()
	if err != nil {
		return "", ""
	}
	level, message, found := strings.Cut(val, "|")
	if !found {
		return "success", val
	}
	return level, message
}
