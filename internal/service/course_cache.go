package service

import (
	"context"
	"educonexa_backend/pkg/logger"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const courseListCacheKey = "educonexa:courses:list"

// CourseCache holds the rendered course listing between writes.
type CourseCache interface {
	Get(ctx context.Context) ([]CourseListItem, bool)
	Set(ctx context.Context, items []CourseListItem)
	Invalidate(ctx context.Context)
}

type RedisCourseCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCourseCache(client *redis.Client, ttl time.Duration) *RedisCourseCache {
	return &RedisCourseCache{Client: client, TTL: ttl}
}

func (c *RedisCourseCache) Get(ctx context.Context) ([]CourseListItem, bool) {
	raw, err := c.Client.Get(ctx, courseListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("course cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var items []CourseListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Log.Warn("course cache entry is corrupt", zap.Error(err))
		return nil, false
	}
	return items, true
}

func (c *RedisCourseCache) Set(ctx context.Context, items []CourseListItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, courseListCacheKey, raw, c.TTL).Err(); err != nil {
		logger.Log.Warn("course cache write failed", zap.Error(err))
	}
}

func (c *RedisCourseCache) Invalidate(ctx context.Context) {
	if err := c.Client.Del(ctx, courseListCacheKey).Err(); err != nil {
		logger.Log.Warn("course cache invalidation failed", zap.Error(err))
	}
}

type noopCourseCache struct{}

func (noopCourseCache) Get(context.Context) ([]CourseListItem, bool) { return nil, false }
func (noopCourseCache) Set(context.Context, []CourseListItem)        {}
func (noopCourseCache) Invalidate(context.Context)                  {}

// NoopCourseCache is used when redis is disabled.
func NoopCourseCache() CourseCache {
	return noopCourseCache{}
}
