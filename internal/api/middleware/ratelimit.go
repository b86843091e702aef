package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/salon-booking/internal/api/handlers"
)

const msgTooManyRequests = "demasiadas solicitudes, intente nuevamente en un minuto"

// WindowCounter увеличивает счётчик ключа в окне фиксированной длины
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisCounter счётчик окна на Lua скрипте: INCR и PEXPIRE выполняются атомарно
type RedisCounter struct {
	rdb redis.Scripter
}

func NewRedisCounter(rdb redis.Scripter) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, c.rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected script result type %T", res)
	}
}

// RateLimiter ограничивает число запросов с одного адреса в окне
type RateLimiter struct {
	counter  WindowCounter
	limit    int64
	window   time.Duration
	prefix   string
	failOpen bool
	logger   Logger
}

func NewRateLimiter(counter WindowCounter, limit int, window time.Duration, prefix string, failOpen bool, logger Logger) *RateLimiter {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	if prefix == "" {
		prefix = "rl"
	}
	return &RateLimiter{
		counter:  counter,
		limit:    int64(limit),
		window:   window,
		prefix:   prefix,
		failOpen: failOpen,
		logger:   logger,
	}
}

// Wrap оборачивает один обработчик. Ключ включает маршрут, поэтому лимиты маршрутов независимы.
func (rl *RateLimiter) Wrap(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := rl.prefix + ":" + route + ":" + clientIP(r)

		count, err := rl.counter.Incr(r.Context(), key, rl.window)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable: route=%s, error=%v", route, err)
			if rl.failOpen {
				next(w, r)
				return
			}
			handlers.RespondError(w, http.StatusServiceUnavailable, handlers.CodeTooManyRequests, msgTooManyRequests)
			return
		}

		if count > rl.limit {
			rl.logger.Warn("rate limit exceeded: route=%s, key=%s, count=%d", route, key, count)
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.RespondError(w, http.StatusTooManyRequests, handlers.CodeTooManyRequests, msgTooManyRequests)
			return
		}

		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
