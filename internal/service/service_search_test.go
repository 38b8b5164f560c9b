package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/ocr"
	"github.com/robklaiss/foteam/internal/repository"
	"github.com/robklaiss/foteam/internal/repository/cache"
	"github.com/robklaiss/foteam/internal/repository/database"
	"github.com/robklaiss/foteam/internal/service"
	mock_service "github.com/robklaiss/foteam/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

func searchPhotos() []*model.Photo {
	base := time.Date(2024, 4, 21, 10, 0, 0, 0, time.UTC)
	return []*model.Photo{
		{ID: "a", Numbers: []string{"123"}, UploadedAt: base},
		{ID: "b", Numbers: []string{"45", "9"}, UploadedAt: base.Add(time.Minute)},
		{ID: "c", Numbers: []string{"512"}, UploadedAt: base},
		{ID: "d", Numbers: []string{}, UploadedAt: base.Add(2 * time.Minute)},
	}
}
func activeList() []*model.Marathon {
	return []*model.Marathon{{ID: fixedMarathonID, Name: "City Marathon", IsActive: true}}
}
func generationOK(generation int64) *repository.RepositoryResponse {
	return &repository.RepositoryResponse{Success: true, Place: cache.GetSearchGeneration, Data: repository.Data{Generation: generation}}
}

// memoryCache keeps search pages per generation the way the Redis cache does.
type memoryCache struct {
	mu         sync.Mutex
	generation int64
	pages      map[string]*model.PhotoPage
	marathons  []*model.Marathon
}

func newMemoryCache() *memoryCache {
	return &memoryCache{pages: map[string]*model.PhotoPage{}}
}
func (c *memoryCache) pageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}
func (c *memoryCache) GetSearchCache(ctx context.Context, key string) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.pages[key]
	if !ok {
		return &repository.RepositoryResponse{Success: false, Place: cache.GetSearchCache}
	}
	return &repository.RepositoryResponse{Success: true, Place: cache.GetSearchCache, Data: repository.Data{Page: page}}
}
func (c *memoryCache) SetSearchCache(ctx context.Context, key string, page *model.PhotoPage) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = page
	return &repository.RepositoryResponse{Success: true, Place: cache.SetSearchCache}
}
func (c *memoryCache) DeleteSearchCache(ctx context.Context) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	for key := range c.pages {
		if strings.HasPrefix(key, "search:") {
			delete(c.pages, key)
		}
	}
	return &repository.RepositoryResponse{Success: true, Place: cache.DeleteSearchCache, Data: repository.Data{Generation: c.generation}}
}
func (c *memoryCache) GetSearchGeneration(ctx context.Context) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return generationOK(c.generation)
}
func (c *memoryCache) GetMarathonsCache(ctx context.Context) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.marathons == nil {
		return &repository.RepositoryResponse{Success: false, Place: cache.GetMarathonsCache}
	}
	return &repository.RepositoryResponse{Success: true, Place: cache.GetMarathonsCache, Data: repository.Data{Marathons: c.marathons}}
}
func (c *memoryCache) SetMarathonsCache(ctx context.Context, marathons []*model.Marathon) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.marathons = marathons
	return &repository.RepositoryResponse{Success: true, Place: cache.SetMarathonsCache}
}
func (c *memoryCache) DeleteMarathonsCache(ctx context.Context) *repository.RepositoryResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.marathons = nil
	return &repository.RepositoryResponse{Success: true, Place: cache.DeleteMarathonsCache}
}

func newSearchService(t *testing.T) (*service.PhotoServiceImplement, uploadMocks) {
	return newUploadService(t, service.Config{MaxPageSize: 10})
}

func TestSearchPhotos_SubstringMatchOrderedByTime(t *testing.T) {
	use, m := newSearchService(t)
	m.photo.EXPECT().GetPhotos(gomock.Any(), (*string)(nil)).Return(&repository.RepositoryResponse{Success: true, Place: database.GetPhotos, Data: repository.Data{Photos: searchPhotos()}})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Place: database.GetMarathons, Data: repository.Data{Marathons: activeList()}})

	response := use.SearchPhotos(traceCtx(), "", []string{" 12 ", "", "5"}, 1, 2)
	require.True(t, response.Success)
	page := response.Data.Page
	require.Equal(t, 3, page.Total)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 2, page.PageSize)
	require.Len(t, page.Photos, 2)
	require.Equal(t, "b", page.Photos[0].ID)
	require.Equal(t, "c", page.Photos[1].ID)
	require.Equal(t, activeList(), page.Marathons)
}

func TestSearchPhotos_EmptyQueryReturnsEverything(t *testing.T) {
	use, m := newSearchService(t)
	m.photo.EXPECT().GetPhotos(gomock.Any(), (*string)(nil)).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: searchPhotos()}})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})
	response := use.SearchPhotos(traceCtx(), "", nil, 1, 24)
	require.True(t, response.Success)
	require.Equal(t, 4, response.Data.Page.Total)
	require.Equal(t, 10, response.Data.Page.PageSize)
	ids := []string{}
	for _, p := range response.Data.Page.Photos {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"d", "b", "c", "a"}, ids)
}

func TestSearchPhotos_PageBeyondEnd(t *testing.T) {
	use, m := newSearchService(t)
	m.photo.EXPECT().GetPhotos(gomock.Any(), (*string)(nil)).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: searchPhotos()}})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})
	response := use.SearchPhotos(traceCtx(), "", []string{"123"}, 5, 3)
	require.True(t, response.Success)
	require.Empty(t, response.Data.Page.Photos)
	require.Equal(t, 1, response.Data.Page.Total)
	require.Equal(t, 1, response.Data.Page.TotalPages)
}

func TestSearchPhotos_MarathonFilter(t *testing.T) {
	use, m := newSearchService(t)
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, marathonid *string) *repository.RepositoryResponse {
		require.NotNil(t, marathonid)
		require.Equal(t, fixedMarathonID, *marathonid)
		return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: []*model.Photo{}}}
	})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})
	response := use.SearchPhotos(traceCtx(), fixedMarathonID, []string{"1"}, 1, 5)
	require.True(t, response.Success)
	require.Equal(t, 0, response.Data.Page.Total)
	require.Equal(t, 0, response.Data.Page.TotalPages)
}

func TestSearchPhotos_InvalidPagination(t *testing.T) {
	use, _ := newSearchService(t)
	for _, args := range [][2]int{{0, 10}, {1, 0}, {-1, -1}} {
		response := use.SearchPhotos(traceCtx(), "", nil, args[0], args[1])
		require.False(t, response.Success)
		require.Equal(t, erro.ClientError(erro.InvalidPagination), response.Errors)
	}
}

func TestSearchPhotos_InvalidMarathonFilter(t *testing.T) {
	use, _ := newSearchService(t)
	response := use.SearchPhotos(traceCtx(), "not-a-uuid", nil, 1, 10)
	require.False(t, response.Success)
	require.Equal(t, erro.ClientError(erro.InvalidMarathonIDFormat), response.Errors)
}

func TestSearchPhotos_StoreUnavailable(t *testing.T) {
	use, m := newSearchService(t)
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(repository.BadResponse(erro.ServerError("pq: connection refused"), database.GetPhotos))
	response := use.SearchPhotos(traceCtx(), "", []string{"1"}, 1, 10)
	require.False(t, response.Success)
	require.Equal(t, erro.ServerError(erro.SearchUnavailable), response.Errors)
}

func TestSearchPhotos_MarathonsDegradeToEmpty(t *testing.T) {
	use, m := newSearchService(t)
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: searchPhotos()}})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(repository.BadResponse(erro.ServerError("pq: timeout"), database.GetMarathons))
	response := use.SearchPhotos(traceCtx(), "", []string{"9"}, 1, 10)
	require.True(t, response.Success)
	require.NotNil(t, response.Data.Page.Marathons)
	require.Empty(t, response.Data.Page.Marathons)
	require.Equal(t, 1, response.Data.Page.Total)
}

func TestSearchPhotos_CacheHit(t *testing.T) {
	use, _ := newSearchService(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mock_service.NewMockCachePhotoRepos(ctrl)
	use.Cache = mockCache
	cached := &model.PhotoPage{Photos: []*model.Photo{{ID: "a"}}, Page: 1, PageSize: 10, Total: 1, TotalPages: 1}
	key := cache.SearchKey(4, nil, []string{"123"}, 1, 10)
	mockCache.EXPECT().GetSearchGeneration(gomock.Any()).Return(generationOK(4))
	mockCache.EXPECT().GetSearchCache(gomock.Any(), key).Return(&repository.RepositoryResponse{Success: true, Place: cache.GetSearchCache, Data: repository.Data{Page: cached}})
	response := use.SearchPhotos(traceCtx(), "", []string{"123"}, 1, 50)
	require.True(t, response.Success)
	require.Equal(t, cached, response.Data.Page)
}

func TestSearchPhotos_CacheMissFillsCache(t *testing.T) {
	use, m := newSearchService(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mock_service.NewMockCachePhotoRepos(ctrl)
	use.Cache = mockCache
	key := cache.SearchKey(2, nil, []string{"45"}, 1, 10)
	mockCache.EXPECT().GetSearchGeneration(gomock.Any()).Return(generationOK(2)).Times(2)
	mockCache.EXPECT().GetSearchCache(gomock.Any(), key).Return(&repository.RepositoryResponse{Success: false, Place: cache.GetSearchCache})
	mockCache.EXPECT().GetMarathonsCache(gomock.Any()).Return(repository.BadResponse(erro.ServerError("redis: connection refused"), cache.GetMarathonsCache))
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: searchPhotos()}})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})
	mockCache.EXPECT().SetMarathonsCache(gomock.Any(), activeList()).Return(&repository.RepositoryResponse{Success: true, Place: cache.SetMarathonsCache})
	mockCache.EXPECT().SetSearchCache(gomock.Any(), key, gomock.Any()).Return(repository.BadResponse(erro.ServerError("redis: connection refused"), cache.SetSearchCache))

	response := use.SearchPhotos(traceCtx(), "", []string{"45"}, 1, 10)
	require.True(t, response.Success)
	require.Equal(t, 1, response.Data.Page.Total)
	require.Equal(t, "b", response.Data.Page.Photos[0].ID)
}

func TestSearchPhotos_GenerationUnavailableBypassesCache(t *testing.T) {
	use, m := newSearchService(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mock_service.NewMockCachePhotoRepos(ctrl)
	use.Cache = mockCache
	mockCache.EXPECT().GetSearchGeneration(gomock.Any()).Return(repository.BadResponse(erro.ServerError("redis: connection refused"), cache.GetSearchGeneration))
	mockCache.EXPECT().GetMarathonsCache(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: searchPhotos()}})

	response := use.SearchPhotos(traceCtx(), "", []string{"512"}, 1, 10)
	require.True(t, response.Success)
	require.Equal(t, "c", response.Data.Page.Photos[0].ID)
}

func TestSearchPhotos_DistinctTermsDoNotShareCachedPage(t *testing.T) {
	use, m := newSearchService(t)
	use.Cache = newMemoryCache()
	photos := []*model.Photo{{ID: "x", Numbers: []string{"2"}, UploadedAt: time.Date(2024, 4, 21, 10, 0, 0, 0, time.UTC)}}
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: photos}}).Times(2)
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})

	joined := use.SearchPhotos(traceCtx(), "", []string{"1,2"}, 1, 10)
	require.True(t, joined.Success)
	require.Equal(t, 0, joined.Data.Page.Total)

	split := use.SearchPhotos(traceCtx(), "", []string{"1", "2"}, 1, 10)
	require.True(t, split.Success)
	require.Equal(t, 1, split.Data.Page.Total)
}

func TestSearchPhotos_UploadInvalidatesCachedPage(t *testing.T) {
	use, m := newSearchService(t)
	use.Config = fastConfig()
	store := newMemoryCache()
	use.Cache = store
	before := searchPhotos()
	uploaded := &model.Photo{ID: "0c8b6f4e-7a3d-4e21-b5f9-6d2c1a0e9b87", Numbers: []string{"123"}, UploadedAt: time.Date(2024, 4, 21, 11, 0, 0, 0, time.UTC)}
	after := append([]*model.Photo{uploaded}, searchPhotos()...)

	gomock.InOrder(
		m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: before}}),
		m.photo.EXPECT().LoadPhoto(gomock.Any(), gomock.Any()).DoAndReturn(persistOK),
		m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: after}}),
	)
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})
	m.cloud.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storedOK())
	m.ocr.EXPECT().RecognizeText(gomock.Any(), storedURL).Return([]ocr.TextBlock{{Text: "Bib 123"}}, nil)

	first := use.SearchPhotos(traceCtx(), "", []string{"123"}, 1, 10)
	require.True(t, first.Success)
	require.Equal(t, 1, first.Data.Page.Total)
	require.Equal(t, 1, store.pageCount())

	upload := use.UploadPhoto(traceCtx(), fixedUserID, "photo.png", "image/png", pngData, "")
	require.True(t, upload.Success)
	require.Equal(t, 0, store.pageCount())

	second := use.SearchPhotos(traceCtx(), "", []string{"123"}, 1, 10)
	require.True(t, second.Success)
	require.Equal(t, 2, second.Data.Page.Total)
	require.Equal(t, uploaded.ID, second.Data.Page.Photos[0].ID)
}

func TestSearchPhotos_PageReadBeforeInvalidationIsNotCached(t *testing.T) {
	use, m := newSearchService(t)
	store := newMemoryCache()
	use.Cache = store
	m.photo.EXPECT().GetPhotos(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, marathonid *string) *repository.RepositoryResponse {
		store.DeleteSearchCache(ctx)
		return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: searchPhotos()}}
	})
	m.marathon.EXPECT().GetMarathons(gomock.Any()).Return(&repository.RepositoryResponse{Success: true, Data: repository.Data{Marathons: activeList()}})

	response := use.SearchPhotos(traceCtx(), "", []string{"9"}, 1, 10)
	require.True(t, response.Success)
	require.Equal(t, 1, response.Data.Page.Total)
	require.Equal(t, 0, store.pageCount())
}
