package service_test

import (
	"context"
	"errors"
	"testing"

	"trivia_api/internal/model"
	"trivia_api/internal/repository"
	"trivia_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	data     map[uint]string
	loadErr  error
	storeErr error
	loads    int
	stores   int
}

func (c *fakeCache) Load(ctx context.Context) (map[uint]string, bool, error) {
	c.loads++
	if c.loadErr != nil {
		return nil, false, c.loadErr
	}
	if c.data == nil {
		return nil, false, nil
	}
	return c.data, true, nil
}

func (c *fakeCache) Store(ctx context.Context, categories map[uint]string) error {
	c.stores++
	if c.storeErr != nil {
		return c.storeErr
	}
	c.data = categories
	return nil
}

func defaultMap() map[uint]string {
	return model.CategoryMap(model.DefaultCategories)
}

func TestListCategoriesWithoutCache(t *testing.T) {
	svc := service.NewCategoryService(repository.NewCategoryRepository(newTestDB(t)), nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultMap(), categories)
}

func TestListCategoriesReadThrough(t *testing.T) {
	db := newTestDB(t)
	cache := &fakeCache{}
	svc := service.NewCategoryService(repository.NewCategoryRepository(db), cache)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultMap(), categories)
	assert.Equal(t, 1, cache.stores)

	// 第二次命中缓存，不会看到数据库中的新分类
	require.NoError(t, db.Create(&model.Category{ID: 7, Type: "Music"}).Error)
	categories, err = svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, 2, cache.loads)
	assert.Equal(t, 1, cache.stores)
}

func TestListCategoriesCacheFailureFallsBack(t *testing.T) {
	cache := &fakeCache{
		loadErr:  errors.New("redis: connection refused"),
		storeErr: errors.New("redis: connection refused"),
	}
	svc := service.NewCategoryService(repository.NewCategoryRepository(newTestDB(t)), cache)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultMap(), categories)
	assert.Equal(t, 1, cache.stores)
}

func TestNewRedisCategoryCacheNilClient(t *testing.T) {
	assert.Nil(t, service.NewRedisCategoryCache(nil, 0))
}
