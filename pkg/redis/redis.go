package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis caches synthesized audio keyed by a hash of (language, text), so a
// repeated dynamic answer does not re-bill the synthesis service.
type IRedis interface {
	SetAudio(ctx context.Context, key string, audio []byte, expiration time.Duration) error
	GetAudio(ctx context.Context, key string) ([]byte, error)
}

var ErrCacheMiss = errors.New("audio not found in cache")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetAudio(ctx context.Context, key string, audio []byte, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, audio, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching audio for key %s: %v", key, err))
		return err
	}
	logrus.Debug(fmt.Sprintf("Cached %d bytes of audio for key %s", len(audio), key))
	return nil
}

func (r *redisClient) GetAudio(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cached audio for key %s: %v", key, err))
		return nil, err
	}
	return val, nil
}
