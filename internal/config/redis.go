package config

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

// InitRedis connects to Redis and pings it.
func InitRedis(cfg *Config) *redis.Client {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	s, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	Logger.Info("Connected to Redis", zap.String("ping", s))
	return RedisClient
}
