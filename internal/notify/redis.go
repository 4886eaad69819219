package notify

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient conecta no redis usado pelo canal de atualizações ao
// vivo. Retorna nil quando REDIS_URL não está configurado — o notifier
// vira no-op e o resto do sistema segue normal.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("REDIS_URL not set, realtime updates disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("redis unreachable, realtime updates disabled:", err)
		return nil
	}

	return client
}
