package service

import (
	"context"
	"encoding/json"
	"time"

	"trivia_api/internal/model"
	"trivia_api/internal/repository"
	"trivia_api/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const categoriesCacheKey = "trivia:categories"

// CategoryCache 分类映射的外部缓存
type CategoryCache interface {
	Load(ctx context.Context) (map[uint]string, bool, error)
	Store(ctx context.Context, categories map[uint]string) error
}

type redisCategoryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCategoryCache rdb 为 nil 时返回 nil，即不使用缓存
func NewRedisCategoryCache(rdb *redis.Client, ttl time.Duration) CategoryCache {
	if rdb == nil {
		return nil
	}
	return &redisCategoryCache{rdb: rdb, ttl: ttl}
}

func (c *redisCategoryCache) Load(ctx context.Context) (map[uint]string, bool, error) {
	val, err := c.rdb.Get(ctx, categoriesCacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var categories map[uint]string
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		return nil, false, err
	}
	return categories, true, nil
}

func (c *redisCategoryCache) Store(ctx context.Context, categories map[uint]string) error {
	val, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, categoriesCacheKey, val, c.ttl).Err()
}

type CategoryService struct {
	repo  *repository.CategoryRepository
	cache CategoryCache
}

func NewCategoryService(repo *repository.CategoryRepository, cache CategoryCache) *CategoryService {
	return &CategoryService{repo: repo, cache: cache}
}

// ListCategories 返回 {id: type}；缓存读写失败只记录日志，不影响结果
func (s *CategoryService) ListCategories(ctx context.Context) (map[uint]string, error) {
	if s.cache != nil {
		categories, ok, err := s.cache.Load(ctx)
		if err != nil {
			logger.Log.Warn("category cache read failed", zap.Error(err))
		} else if ok {
			return categories, nil
		}
	}

	list, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	categories := model.CategoryMap(list)

	if s.cache != nil {
		if err := s.cache.Store(ctx, categories); err != nil {
			logger.Log.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}
