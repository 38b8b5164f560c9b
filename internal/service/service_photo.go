package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/brokers/rabbitmq"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/extractor"
	"github.com/robklaiss/foteam/internal/metrics"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/repository/cache"
	"github.com/robklaiss/foteam/internal/search"
)

// UploadPhoto validates, stores, recognizes and persists one photo. OCR failures
// leave the photo without numbers; storage and persistence failures abort.
// The declared content type is advisory, the stored one is sniffed from data.
func (use *PhotoServiceImplement) UploadPhoto(ctx context.Context, userid string, filename string, contentType string, data []byte, marathonid string) *ServiceResponse {
	const place = UseCase_UploadPhoto
	traceid := traceID(ctx)
	cfg := use.Config.normalized()
	ext, sniffed, verr := validatePhoto(data, filename, cfg)
	if verr != nil {
		return use.clientFailure(place, traceid, fmt.Sprintf("Rejected upload %q (%d bytes): %s", filename, len(data), verr.Message), verr.Message)
	}
	if contentType != "" && contentType != sniffed {
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Declared content type %s of %q differs from detected %s", contentType, filename, sniffed))
	}
	association := use.resolveMarathon(ctx, marathonid, traceid, cfg)
	if resp := use.checkContext(ctx, place, traceid, "storing"); resp != nil {
		return resp
	}
	storedName := uuid.New().String() + "." + ext
	url, err := use.storePhoto(ctx, data, storedName, sniffed, traceid, cfg)
	if err != nil {
		return use.serverFailure(place, traceid, fmt.Sprintf("Failed to store %s: %v", storedName, err), erro.StorageError)
	}
	if resp := use.checkContext(ctx, place, traceid, "recognition"); resp != nil {
		return resp
	}
	numbers := use.recognizeNumbers(ctx, url, traceid, cfg)
	if resp := use.checkContext(ctx, place, traceid, "persisting"); resp != nil {
		return resp
	}
	photo := &model.Photo{
		UserID:      userid,
		MarathonID:  association,
		Filename:    filename,
		URL:         url,
		Size:        int64(len(data)),
		ContentType: sniffed,
		Numbers:     numbers,
	}
	start := time.Now()
	dbctx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()
	bdresponse := use.Photorepo.LoadPhoto(dbctx, photo)
	metrics.StageMetrics("persist", start)
	if !bdresponse.Success {
		msg := "record store returned no result"
		if bdresponse.Errors != nil {
			msg = bdresponse.Errors.Message
		}
		return use.serverFailure(bdresponse.Place, traceid, fmt.Sprintf("Photo %s stored at %s but not persisted: %s", storedName, url, msg), erro.PersistenceError)
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, bdresponse.Place, traceid, bdresponse.SuccessMessage)
	photo = bdresponse.Data.Photo
	metrics.PhotoNumbersDetected.Observe(float64(len(photo.Numbers)))
	use.invalidateSearch(ctx, traceid, cfg)
	use.afterUpload(ctx, photo, traceid)
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(id = %s) has been successfully uploaded with %d candidate numbers", photo.ID, len(photo.Numbers)))
	return &ServiceResponse{Success: true, Data: Data{Photo: photo}}
}

// resolveMarathon returns the marathon reference to store, or nil when the id
// is absent or does not name a known marathon.
func (use *PhotoServiceImplement) resolveMarathon(ctx context.Context, marathonid string, traceid string, cfg Config) *string {
	const place = ResolveMarathon
	if marathonid == "" {
		return nil
	}
	if err := use.parsingIDs(marathonid, traceid, place); err != nil {
		return nil
	}
	dbctx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()
	resp := use.Marathonrepo.GetMarathon(dbctx, marathonid)
	if !resp.Success {
		reason := "unknown marathon"
		if resp.Errors != nil {
			reason = resp.Errors.Message
		}
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Marathon %s is ignored for this upload: %s", marathonid, reason))
		return nil
	}
	id := resp.Data.Marathon.ID
	return &id
}
func (use *PhotoServiceImplement) storePhoto(ctx context.Context, data []byte, storedName string, contentType string, traceid string, cfg Config) (string, error) {
	const place = StorePhoto
	defer metrics.StageMetrics("store", time.Now())
	var url string
	attempt := 0
	err := withRetry(ctx, cfg, cfg.StorageRetries, cfg.StorageTimeout, func(callctx context.Context) error {
		attempt++
		resp := use.Cloud.UploadFile(callctx, data, storedName, contentType)
		if !resp.Success {
			msg := "blob store returned no result"
			if resp.Errors != nil {
				msg = resp.Errors.Message
			}
			use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, fmt.Sprintf("Attempt %d to store %s failed: %s", attempt, storedName, msg))
			return errors.New(msg)
		}
		use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, resp.Place, traceid, resp.SuccessMessage)
		url = resp.Data.URL
		return nil
	})
	if err != nil {
		return "", err
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Photo %s stored after %d attempt(s)", storedName, attempt))
	return url, nil
}

// recognizeNumbers never fails: any OCR error yields an empty list.
func (use *PhotoServiceImplement) recognizeNumbers(ctx context.Context, url string, traceid string, cfg Config) []string {
	const place = RecognizeNumbers
	defer metrics.StageMetrics("recognize", time.Now())
	var primary string
	found := false
	err := withRetry(ctx, cfg, cfg.OCRRetries, cfg.OCRTimeout, func(callctx context.Context) error {
		blocks, err := use.Ocr.RecognizeText(callctx, url)
		if err != nil {
			return err
		}
		found = len(blocks) > 0
		if found {
			primary = blocks[0].Text
		}
		return nil
	})
	if err != nil {
		metrics.PhotoOCRFailuresTotal.Inc()
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("OCR failed for %s, continuing without numbers: %v", url, err))
		return []string{}
	}
	if !found {
		use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("No text found in %s", url))
		return []string{}
	}
	return extractor.Extract(primary)
}

func (use *PhotoServiceImplement) afterUpload(ctx context.Context, photo *model.Photo, traceid string) {
	if use.Eventproducer != nil {
		use.enqueueTask(ctx, func(taskctx context.Context) {
			const place = PublishPhotoEvent
			if err := use.Eventproducer.NewPhotoEvent(taskctx, rabbitmq.PhotoUploadedKey, photo, place, traceid); err != nil {
				use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to publish upload event for photo %s: %v", photo.ID, err))
			}
		}, PublishPhotoEvent, traceid)
	}
}

// invalidateSearch runs before the upload is reported, so a search issued after
// the response never sees a page that predates the photo. Failure only logs.
func (use *PhotoServiceImplement) invalidateSearch(ctx context.Context, traceid string, cfg Config) {
	if use.Cache == nil {
		return
	}
	cachectx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.DatabaseTimeout)
	defer cancel()
	resp := use.Cache.DeleteSearchCache(cachectx)
	if resp.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
		return
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, resp.Place, traceid, resp.SuccessMessage)
}

// SearchPhotos answers a bib-number query. The marathon list in the result is
// best effort and empty when it cannot be loaded.
func (use *PhotoServiceImplement) SearchPhotos(ctx context.Context, marathonid string, numbers []string, page int, pageSize int) *ServiceResponse {
	const place = UseCase_SearchPhotos
	traceid := traceID(ctx)
	cfg := use.Config.normalized()
	if page < 1 || pageSize < 1 {
		return use.clientFailure(place, traceid, fmt.Sprintf("Invalid pagination page=%d page_size=%d", page, pageSize), erro.InvalidPagination)
	}
	if pageSize > cfg.MaxPageSize {
		pageSize = cfg.MaxPageSize
	}
	terms := search.NormalizeNumbers(numbers)
	var filter *string
	if marathonid != "" {
		if err := use.parsingIDs(marathonid, traceid, place); err != nil {
			return use.clientFailure(place, traceid, fmt.Sprintf("Invalid marathon filter %q", marathonid), erro.InvalidMarathonIDFormat)
		}
		filter = &marathonid
	}
	generation, cacheable := use.searchGeneration(ctx, traceid)
	key := cache.SearchKey(generation, filter, terms, page, pageSize)
	if cacheable {
		if cached := use.cachedPage(ctx, key, traceid); cached != nil {
			return &ServiceResponse{Success: true, Data: Data{Page: cached}}
		}
	}
	dbctx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()
	bdresponse := use.Photorepo.GetPhotos(dbctx, filter)
	if !bdresponse.Success {
		msg := "record store returned no result"
		if bdresponse.Errors != nil {
			msg = bdresponse.Errors.Message
		}
		return use.serverFailure(bdresponse.Place, traceid, msg, erro.SearchUnavailable)
	}
	photos, total := search.Paginate(bdresponse.Data.Photos, terms, page, pageSize)
	result := &model.PhotoPage{
		Photos:     photos,
		Marathons:  use.activeMarathons(ctx, traceid, cfg),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: search.TotalPages(total, pageSize),
	}
	if cacheable {
		use.storePage(ctx, generation, key, result, traceid)
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Search %v returned %d of %d photos", terms, len(photos), total))
	return &ServiceResponse{Success: true, Data: Data{Page: result}}
}

// searchGeneration reports false when pages must bypass the cache.
func (use *PhotoServiceImplement) searchGeneration(ctx context.Context, traceid string) (int64, bool) {
	if use.Cache == nil {
		return 0, false
	}
	resp := use.Cache.GetSearchGeneration(ctx)
	if !resp.Success {
		metrics.PhotoSearchCacheTotal.WithLabelValues("error").Inc()
		if resp.Errors != nil {
			use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
		}
		return 0, false
	}
	return resp.Data.Generation, true
}

// storePage skips pages read before an invalidation that happened during the search.
func (use *PhotoServiceImplement) storePage(ctx context.Context, generation int64, key string, page *model.PhotoPage, traceid string) {
	current, ok := use.searchGeneration(ctx, traceid)
	if !ok {
		return
	}
	if current != generation {
		use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, UseCase_SearchPhotos, traceid, fmt.Sprintf("Search cache moved from generation %d to %d, page is not cached", generation, current))
		return
	}
	if resp := use.Cache.SetSearchCache(ctx, key, page); resp.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
	}
}
func (use *PhotoServiceImplement) cachedPage(ctx context.Context, key string, traceid string) *model.PhotoPage {
	resp := use.Cache.GetSearchCache(ctx, key)
	if resp.Success {
		metrics.PhotoSearchCacheTotal.WithLabelValues("hit").Inc()
		use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, resp.Place, traceid, resp.SuccessMessage)
		return resp.Data.Page
	}
	if resp.Errors != nil {
		metrics.PhotoSearchCacheTotal.WithLabelValues("error").Inc()
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
		return nil
	}
	metrics.PhotoSearchCacheTotal.WithLabelValues("miss").Inc()
	return nil
}
