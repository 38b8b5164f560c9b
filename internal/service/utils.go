package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/metrics"
	"github.com/robklaiss/foteam/internal/repository"
)

func traceID(ctx context.Context) string {
	traceid, _ := ctx.Value("traceID").(string)
	return traceid
}
func (use *PhotoServiceImplement) requestToRepository(response *repository.RepositoryResponse, traceid string) (*repository.RepositoryResponse, *ServiceResponse) {
	if !response.Success && response.Errors != nil {
		switch response.Errors.Type {
		case erro.ServerErrorType:
			use.Logproducer.NewPhotoLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			metrics.PhotoErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			return response, &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoServiceUnavalaible)}
		case erro.ClientErrorType:
			use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
			metrics.PhotoErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			return response, &ServiceResponse{Success: false, Errors: response.Errors}
		}
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return response, nil
}
func (use *PhotoServiceImplement) clientFailure(place string, traceid string, logmsg string, reason string) *ServiceResponse {
	use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, place, traceid, logmsg)
	metrics.PhotoErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
	return &ServiceResponse{Success: false, Errors: erro.ClientError(reason)}
}
func (use *PhotoServiceImplement) serverFailure(place string, traceid string, logmsg string, reason string) *ServiceResponse {
	use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, logmsg)
	metrics.PhotoErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
	return &ServiceResponse{Success: false, Errors: erro.ServerError(reason)}
}

// checkContext reports a timed out response once the request context is done.
func (use *PhotoServiceImplement) checkContext(ctx context.Context, place string, traceid string, stage string) *ServiceResponse {
	if ctx.Err() == nil {
		return nil
	}
	return use.serverFailure(place, traceid, fmt.Sprintf("%s before %s: %v", erro.ContextCanceled, stage, ctx.Err()), erro.RequestTimedOut)
}
func (use *PhotoServiceImplement) parsingIDs(id string, traceid string, place string) error {
	_, err := uuid.Parse(id)
	if err != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("UUID-parse Error: %v", err))
		return err
	}
	return nil
}

// validatePhoto returns the lower-cased extension and the sniffed content type.
func validatePhoto(data []byte, filename string, cfg Config) (string, string, *erro.CustomError) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	allowed := false
	for _, a := range cfg.AllowedExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", "", erro.ClientError(erro.InvalidFileType)
	}
	if len(data) == 0 {
		return "", "", erro.ClientError(erro.EmptyFile)
	}
	if int64(len(data)) > cfg.MaxFileSize {
		return "", "", erro.ClientError(erro.LargeFile)
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", "", erro.ClientError(erro.InvalidFileType)
	}
	return ext, mime.String(), nil
}

// withRetry runs op with exponential backoff, at most retries extra times, each
// attempt bounded by timeout. A permanent error stops the loop early.
func withRetry(ctx context.Context, cfg Config, retries uint64, timeout time.Duration, op func(ctx context.Context) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.RetryInitialInterval
	policy.MaxElapsedTime = 0
	attempt := func() error {
		callctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return op(callctx)
	}
	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx))
}
func (use *PhotoServiceImplement) enqueueTask(ctx context.Context, task func(context.Context), place string, traceid string) *ServiceResponse {
	timeout := use.Config.normalized().TaskTimeout
	select {
	case use.Task_queue <- func() {
		taskCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		task(taskCtx)
	}:
		metrics.PhotoTaskQueueSize.Set(float64(len(use.Task_queue)))
		return &ServiceResponse{Success: true}
	case <-ctx.Done():
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, erro.ContextCanceled)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoServiceUnavalaible)}
	default:
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, erro.ErrorOverflowTaskQ)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoServiceUnavalaible)}
	}
}
