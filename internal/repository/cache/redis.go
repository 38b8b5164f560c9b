package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
	"go.uber.org/zap"
)

const SetSearchCache = "Repository-SetSearchCache"
const GetSearchCache = "Repository-GetSearchCache"
const DeleteSearchCache = "Repository-DeleteSearchCache"
const GetSearchGeneration = "Repository-GetSearchGeneration"
const SetMarathonsCache = "Repository-SetMarathonsCache"
const GetMarathonsCache = "Repository-GetMarathonsCache"
const DeleteMarathonsCache = "Repository-DeleteMarathonsCache"

type CacheObject struct {
	connect     redis.UniversalClient
	searchTTL   time.Duration
	marathonTTL time.Duration
	logger      logger.PhotoLoggerInterface
}

func NewRedisConnection(cfg configs.RedisConfig, log logger.PhotoLoggerInterface) (*CacheObject, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	redisobject := NewCacheObject(client, cfg.SearchTTL, cfg.MarathonTTL, log)
	err := redisobject.Ping(context.Background())
	if err != nil {
		client.Close()
		log.Error("Failed to establish Redis-Client connection", zap.Error(err))
		return nil, err
	}
	log.Info("Successful connect to Redis-Client", zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)))
	return redisobject, nil
}
func NewCacheObject(client redis.UniversalClient, searchTTL, marathonTTL time.Duration, log logger.PhotoLoggerInterface) *CacheObject {
	return &CacheObject{connect: client, searchTTL: searchTTL, marathonTTL: marathonTTL, logger: log}
}
func (r *CacheObject) Ping(ctx context.Context) error {
	return r.connect.Ping(ctx).Err()
}
func (r *CacheObject) Close() {
	r.connect.Close()
	r.logger.Info("Successful close Redis-Client")
}
