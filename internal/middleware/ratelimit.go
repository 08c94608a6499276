package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/agendalivre/agenda-api/internal/httperr"
)

// RateLimit é um limitador de janela fixa por IP, compartilhado entre
// instâncias via Redis. Protege as rotas públicas (slots + booking) de
// scraping e flood de reservas. Se o Redis estiver fora, deixa passar:
// limite de requisição nunca derruba a API.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) gin.HandlerFunc {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.FullPath()

		pipe := rdb.TxPipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, window)

		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, failing open")
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			httperr.TooManyRequests(c, "rate_limited", "Muitas requisições. Tente novamente em instantes.")
			c.Abort()
			return
		}

		c.Next()
	}
}
