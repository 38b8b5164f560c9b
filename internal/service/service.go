package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/ocr"
	"github.com/robklaiss/foteam/internal/repository"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mock_service
type DBPhotoRepos interface {
	LoadPhoto(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse
	GetPhotos(ctx context.Context, marathonid *string) *repository.RepositoryResponse
}
type DBMarathonRepos interface {
	CreateMarathon(ctx context.Context, marathon *model.Marathon) *repository.RepositoryResponse
	UpdateMarathon(ctx context.Context, marathon *model.Marathon) *repository.RepositoryResponse
	GetMarathon(ctx context.Context, marathonid string) *repository.RepositoryResponse
	GetMarathons(ctx context.Context) *repository.RepositoryResponse
	GetUserMarathons(ctx context.Context, userid string) *repository.RepositoryResponse
}
type CachePhotoRepos interface {
	GetSearchCache(ctx context.Context, key string) *repository.RepositoryResponse
	SetSearchCache(ctx context.Context, key string, page *model.PhotoPage) *repository.RepositoryResponse
	DeleteSearchCache(ctx context.Context) *repository.RepositoryResponse
	GetSearchGeneration(ctx context.Context) *repository.RepositoryResponse
	GetMarathonsCache(ctx context.Context) *repository.RepositoryResponse
	SetMarathonsCache(ctx context.Context, marathons []*model.Marathon) *repository.RepositoryResponse
	DeleteMarathonsCache(ctx context.Context) *repository.RepositoryResponse
}
type CloudPhotoStorage interface {
	UploadFile(ctx context.Context, data []byte, filename string, contentType string) *repository.RepositoryResponse
}
type OcrEngine interface {
	RecognizeText(ctx context.Context, url string) ([]ocr.TextBlock, error)
}
type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}
type EventProducer interface {
	NewPhotoEvent(ctx context.Context, routingKey string, photo *model.Photo, place string, traceid string) error
}

const UseCase_UploadPhoto = "UseCase-UploadPhoto"
const UseCase_SearchPhotos = "UseCase-SearchPhotos"
const UseCase_CreateMarathon = "UseCase-CreateMarathon"
const UseCase_UpdateMarathon = "UseCase-UpdateMarathon"
const UseCase_GetMyMarathons = "UseCase-GetMyMarathons"
const UseCase_GetActiveMarathons = "UseCase-GetActiveMarathons"
const StorePhoto = "StorePhoto"
const RecognizeNumbers = "RecognizeNumbers"
const ResolveMarathon = "ResolveMarathon"
const PublishPhotoEvent = "PublishPhotoEvent"
const InvalidateCache = "InvalidateCache"

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}
type Data struct {
	Photo     *model.Photo
	Page      *model.PhotoPage
	Marathon  *model.Marathon
	Marathons []*model.Marathon
}

// Config holds the limits of the upload and search use cases. Zero fields fall back to defaults.
type Config struct {
	MaxFileSize          int64
	AllowedExtensions    []string
	StorageTimeout       time.Duration
	StorageRetries       uint64
	OCRTimeout           time.Duration
	OCRRetries           uint64
	RetryInitialInterval time.Duration
	DatabaseTimeout      time.Duration
	TaskTimeout          time.Duration
	MaxPageSize          int
}

func (c Config) normalized() Config {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 16 << 20
	}
	if len(c.AllowedExtensions) == 0 {
		c.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif"}
	}
	if c.StorageTimeout <= 0 {
		c.StorageTimeout = 30 * time.Second
	}
	if c.OCRTimeout <= 0 {
		c.OCRTimeout = 20 * time.Second
	}
	if c.RetryInitialInterval <= 0 {
		c.RetryInitialInterval = 200 * time.Millisecond
	}
	if c.DatabaseTimeout <= 0 {
		c.DatabaseTimeout = 5 * time.Second
	}
	if c.TaskTimeout <= 0 {
		c.TaskTimeout = 10 * time.Second
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}
	return c
}

type PhotoServiceImplement struct {
	Photorepo     DBPhotoRepos
	Marathonrepo  DBMarathonRepos
	Cache         CachePhotoRepos
	Cloud         CloudPhotoStorage
	Ocr           OcrEngine
	Logproducer   LogProducer
	Eventproducer EventProducer
	Validator     *validator.Validate
	Config        Config
	Task_queue    chan func()
	wg            *sync.WaitGroup
	closechan     chan struct{}
}

func NewPhotoService(photorepo DBPhotoRepos, marathonrepo DBMarathonRepos, cache CachePhotoRepos, cloud CloudPhotoStorage, ocrengine OcrEngine,
	logproducer LogProducer, eventproducer EventProducer, config Config, queueSize int, workers int) *PhotoServiceImplement {
	use := &PhotoServiceImplement{
		Photorepo:     photorepo,
		Marathonrepo:  marathonrepo,
		Cache:         cache,
		Cloud:         cloud,
		Ocr:           ocrengine,
		Logproducer:   logproducer,
		Eventproducer: eventproducer,
		Validator:     validator.New(),
		Config:        config.normalized(),
		Task_queue:    make(chan func(), queueSize),
		wg:            &sync.WaitGroup{},
		closechan:     make(chan struct{}),
	}
	for i := 1; i <= workers; i++ {
		use.wg.Add(1)
		go use.taskWorker(i)
	}
	return use
}
