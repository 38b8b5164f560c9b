package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/brokers/rabbitmq"
	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/handlers"
	"github.com/robklaiss/foteam/internal/handlers/middleware"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/robklaiss/foteam/internal/metrics"
	"github.com/robklaiss/foteam/internal/ocr"
	"github.com/robklaiss/foteam/internal/ocr/tesseract"
	"github.com/robklaiss/foteam/internal/repository"
	"github.com/robklaiss/foteam/internal/repository/cache"
	"github.com/robklaiss/foteam/internal/repository/cloud"
	"github.com/robklaiss/foteam/internal/repository/database"
	"github.com/robklaiss/foteam/internal/server"
	"github.com/robklaiss/foteam/internal/service"
	"go.uber.org/zap"
)

type PhotoApplication struct {
	config configs.Config
	logger logger.PhotoLoggerInterface
	server *server.Server
}

func NewPhotoApplication(config configs.Config, log logger.PhotoLoggerInterface) *PhotoApplication {
	return &PhotoApplication{config: config, logger: log}
}

// blobStore is what both storage drivers offer: uploads for the pipeline, downloads for OCR.
type blobStore interface {
	service.CloudPhotoStorage
	FetchFile(ctx context.Context, url string) *repository.RepositoryResponse
}

func (a *PhotoApplication) Start() error {
	defer func() {
		a.logger.Debug("Count of active goroutines", zap.Int("goroutines", runtime.NumGoroutine()))
	}()
	if a.config.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         a.config.Sentry.DSN,
			Environment: a.config.Sentry.Environment,
		}); err != nil {
			a.logger.Warn("Sentry initialization failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}
	metrics.Start()
	defer metrics.Stop()
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka, a.logger)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	pg, err := database.NewPostgresConnection(a.config.Database, a.logger)
	if err != nil {
		return err
	}
	defer pg.Close()
	redis, err := cache.NewRedisConnection(a.config.Redis, a.logger)
	if err != nil {
		return err
	}
	defer redis.Close()
	store, err := a.newBlobStore()
	if err != nil {
		return err
	}
	rabbitProducer, err := rabbitmq.NewRabbitProducer(a.config.RabbitMQ, kafkaProducer, a.logger)
	if err != nil {
		return err
	}
	defer rabbitProducer.Close()
	engine := ocr.NewEngine(a.newFetcher(store), tesseract.NewTesseractRecognizer(a.config.OCR.Languages))
	photoService := service.NewPhotoService(
		database.NewPhotoDatabase(pg),
		database.NewMarathonDatabase(pg),
		cache.NewPhotoCache(redis),
		store,
		engine,
		kafkaProducer,
		rabbitProducer,
		service.Config{
			MaxFileSize:       a.config.Upload.MaxFileSize,
			AllowedExtensions: a.config.Upload.AllowedExtensions,
			StorageTimeout:    a.config.Storage.Timeout,
			StorageRetries:    a.config.Storage.MaxRetries,
			OCRTimeout:        a.config.OCR.Timeout,
			OCRRetries:        a.config.OCR.MaxRetries,
			DatabaseTimeout:   a.config.Database.Timeout,
			TaskTimeout:       a.config.Upload.TaskTimeout,
			MaxPageSize:       a.config.Search.MaxPageSize,
		},
		a.config.Upload.QueueSize,
		a.config.Upload.Workers,
	)
	defer photoService.StopWorkers()
	mw := middleware.NewMiddleware(kafkaProducer, a.config.RateLimit, a.config.Server.RequestTimeout)
	defer mw.Stop()
	handler := handlers.NewHandler(photoService, kafkaProducer, mw, handlers.Limits{
		MaxFileSize:        a.config.Upload.MaxFileSize,
		MaxMultipartMemory: a.config.Server.MaxMultipartMemory,
		DefaultPageSize:    a.config.Search.DefaultPageSize,
	})
	a.server = server.NewServer(a.config.Server, handler.InitRoutes(), a.logger)
	kafkaProducer.LogStart()
	serverError := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil {
			serverError <- err
		}
		close(serverError)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		a.logger.Info("Server shutting down with signal", zap.String("signal", sig.String()))
	case err := <-serverError:
		a.logger.Error("Server startup failed", zap.Error(err))
		return err
	}
	return a.Stop()
}
func (a *PhotoApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	a.logger.Info("Server is shutting down...")
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}
	a.logger.Info("Server has shutted down successfully")
	return nil
}
func (a *PhotoApplication) newBlobStore() (blobStore, error) {
	switch a.config.Storage.Driver {
	case "s3":
		s3conn, err := cloud.NewS3Connection(a.config.S3, a.logger)
		if err != nil {
			return nil, err
		}
		return cloud.NewS3PhotoCloud(s3conn), nil
	case "mega", "":
		megaconn, err := cloud.NewMegaConnection(a.config.Mega, a.logger)
		if err != nil {
			return nil, err
		}
		return cloud.NewPhotoCloud(megaconn), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", a.config.Storage.Driver)
}
func (a *PhotoApplication) newFetcher(store blobStore) ocr.ImageFetcher {
	if a.config.OCR.Fetch == "http" {
		return ocr.NewHTTPFetcher(a.config.OCR.Timeout, a.config.Upload.MaxFileSize)
	}
	return ocr.NewStoreFetcher(store)
}
