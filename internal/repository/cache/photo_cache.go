package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/repository"
)

type PhotoCache struct {
	cacheclient *CacheObject
}

func NewPhotoCache(red *CacheObject) *PhotoCache {
	return &PhotoCache{cacheclient: red}
}

const KeySearch = "search:%d:%s:%s:%d:%d"
const KeySearchPattern = "search:*"
const KeySearchGeneration = "search-generation"
const KeyMarathons = "marathons:active"

// SearchKey identifies one page of one query within a cache generation.
// Terms are JSON encoded so a term containing a comma cannot alias two terms.
func SearchKey(generation int64, marathonid *string, terms []string, page, pageSize int) string {
	marathon := "all"
	if marathonid != nil {
		marathon = *marathonid
	}
	if terms == nil {
		terms = []string{}
	}
	encoded, _ := json.Marshal(terms)
	return fmt.Sprintf(KeySearch, generation, marathon, encoded, page, pageSize)
}

// GetSearchGeneration returns the current generation; a missing counter is generation 0.
func (ph *PhotoCache) GetSearchGeneration(ctx context.Context) *repository.RepositoryResponse {
	const place = GetSearchGeneration
	generation, err := ph.cacheclient.connect.Get(ctx, KeySearchGeneration).Int64()
	if err != nil && err != redis.Nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetSearch, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Generation: generation}, SuccessMessage: "Successful get search generation from cache", Place: place}
}
func (ph *PhotoCache) SetSearchCache(ctx context.Context, key string, page *model.PhotoPage) *repository.RepositoryResponse {
	const place = SetSearchCache
	jsondata, err := json.Marshal(page)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	err = ph.cacheclient.connect.Set(ctx, key, jsondata, ph.cacheclient.searchTTL).Err()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetSearch, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful add search page in cache", Place: place}
}

// GetSearchCache reports a miss as an unsuccessful response without errors.
func (ph *PhotoCache) GetSearchCache(ctx context.Context, key string) *repository.RepositoryResponse {
	const place = GetSearchCache
	result, err := ph.cacheclient.connect.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &repository.RepositoryResponse{Success: false, SuccessMessage: "Search page was not found in the cache", Place: place}
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetSearch, err)), place)
	}
	var page model.PhotoPage
	err = json.Unmarshal([]byte(result), &page)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Page: &page}, SuccessMessage: "Successful get search page from cache", Place: place}
}

// DeleteSearchCache moves every reader to a new generation, then drops the pages
// of older ones. Pages written later under an old generation are never read.
func (ph *PhotoCache) DeleteSearchCache(ctx context.Context) *repository.RepositoryResponse {
	const place = DeleteSearchCache
	generation, err := ph.cacheclient.connect.Incr(ctx, KeySearchGeneration).Result()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelSearch, err)), place)
	}
	var count int64
	iter := ph.cacheclient.connect.Scan(ctx, 0, KeySearchPattern, 100).Iterator()
	for iter.Next(ctx) {
		num, err := ph.cacheclient.connect.Del(ctx, iter.Val()).Result()
		if err != nil {
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelSearch, err)), place)
		}
		count += num
	}
	if err := iter.Err(); err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Generation: generation},
		SuccessMessage: fmt.Sprintf("Successful delete %d search pages from cache, generation %d", count, generation), Place: place}
}
func (ph *PhotoCache) SetMarathonsCache(ctx context.Context, marathons []*model.Marathon) *repository.RepositoryResponse {
	const place = SetMarathonsCache
	jsondata, err := json.Marshal(marathons)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	err = ph.cacheclient.connect.Set(ctx, KeyMarathons, jsondata, ph.cacheclient.marathonTTL).Err()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetSearch, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful add active marathons in cache", Place: place}
}
func (ph *PhotoCache) GetMarathonsCache(ctx context.Context) *repository.RepositoryResponse {
	const place = GetMarathonsCache
	result, err := ph.cacheclient.connect.Get(ctx, KeyMarathons).Result()
	if err != nil {
		if err == redis.Nil {
			return &repository.RepositoryResponse{Success: false, SuccessMessage: "Active marathons were not found in the cache", Place: place}
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetSearch, err)), place)
	}
	marathons := make([]*model.Marathon, 0)
	err = json.Unmarshal([]byte(result), &marathons)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: marathons}, SuccessMessage: "Successful get active marathons from cache", Place: place}
}
func (ph *PhotoCache) DeleteMarathonsCache(ctx context.Context) *repository.RepositoryResponse {
	const place = DeleteMarathonsCache
	_, err := ph.cacheclient.connect.Del(ctx, KeyMarathons).Result()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelSearch, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful delete active marathons from cache", Place: place}
}
