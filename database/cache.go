package database

import (
	"context"
	"log"
	"time"

	config "github.com/krishvarma/tutor_connect/configs"
	"github.com/redis/go-redis/v9"
)

// Cache is optional. When Redis is unreachable the client stays nil and
// every helper below degrades to a no-op, so reads fall through to Postgres.
var Cache *redis.Client

const TutorDirectoryKey = "tutors:directory"

func ConnectCache() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis not available (%v), tutor directory caching disabled", err)
		Cache = nil
		return
	}

	Cache = client
	log.Println("✅ Redis cache connected successfully")
}

func CacheGet(ctx context.Context, key string) (string, bool) {
	if Cache == nil {
		return "", false
	}
	val, err := Cache.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if Cache == nil {
		return
	}
	if err := Cache.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Failed to write cache key %s: %v", key, err)
	}
}

func CacheInvalidate(ctx context.Context, key string) {
	if Cache == nil {
		return
	}
	if err := Cache.Del(ctx, key).Err(); err != nil {
		log.Printf("Failed to invalidate cache key %s: %v", key, err)
	}
}
