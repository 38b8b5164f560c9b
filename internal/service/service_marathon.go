package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/repository"
)

const eventDateLayout = "2006-01-02"

func (use *PhotoServiceImplement) CreateMarathon(ctx context.Context, userid string, req *model.MarathonRequest) *ServiceResponse {
	const place = UseCase_CreateMarathon
	traceid := traceID(ctx)
	marathon, resp := use.marathonFromRequest(userid, req, place, traceid)
	if resp != nil {
		return resp
	}
	dbctx, cancel := context.WithTimeout(ctx, use.Config.normalized().DatabaseTimeout)
	defer cancel()
	bdresponse, serviceresponse := use.requestToRepository(use.Marathonrepo.CreateMarathon(dbctx, marathon), traceid)
	if serviceresponse != nil {
		return serviceresponse
	}
	use.invalidateMarathons(ctx, traceid)
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Marathon %s has been created", bdresponse.Data.Marathon.ID))
	return &ServiceResponse{Success: true, Data: Data{Marathon: bdresponse.Data.Marathon}}
}

// UpdateMarathon replaces the editable fields of a marathon the caller owns.
func (use *PhotoServiceImplement) UpdateMarathon(ctx context.Context, userid string, marathonid string, req *model.MarathonRequest) *ServiceResponse {
	const place = UseCase_UpdateMarathon
	traceid := traceID(ctx)
	if err := use.parsingIDs(marathonid, traceid, place); err != nil {
		return use.clientFailure(place, traceid, fmt.Sprintf("Invalid marathon id %q", marathonid), erro.InvalidMarathonIDFormat)
	}
	marathon, resp := use.marathonFromRequest(userid, req, place, traceid)
	if resp != nil {
		return resp
	}
	marathon.ID = marathonid
	dbctx, cancel := context.WithTimeout(ctx, use.Config.normalized().DatabaseTimeout)
	defer cancel()
	bdresponse, serviceresponse := use.requestToRepository(use.Marathonrepo.UpdateMarathon(dbctx, marathon), traceid)
	if serviceresponse != nil {
		return serviceresponse
	}
	use.invalidateMarathons(ctx, traceid)
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Marathon %s has been updated", marathonid))
	return &ServiceResponse{Success: true, Data: Data{Marathon: bdresponse.Data.Marathon}}
}
func (use *PhotoServiceImplement) GetMyMarathons(ctx context.Context, userid string) *ServiceResponse {
	const place = UseCase_GetMyMarathons
	traceid := traceID(ctx)
	dbctx, cancel := context.WithTimeout(ctx, use.Config.normalized().DatabaseTimeout)
	defer cancel()
	bdresponse, serviceresponse := use.requestToRepository(use.Marathonrepo.GetUserMarathons(dbctx, userid), traceid)
	if serviceresponse != nil {
		return serviceresponse
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Found %d marathons of user %s", len(bdresponse.Data.Marathons), userid))
	return &ServiceResponse{Success: true, Data: Data{Marathons: bdresponse.Data.Marathons}}
}

// GetActiveMarathons serves the picker list, from cache when possible.
func (use *PhotoServiceImplement) GetActiveMarathons(ctx context.Context) *ServiceResponse {
	const place = UseCase_GetActiveMarathons
	traceid := traceID(ctx)
	if marathons, ok := use.cachedMarathons(ctx, traceid); ok {
		return &ServiceResponse{Success: true, Data: Data{Marathons: marathons}}
	}
	dbctx, cancel := context.WithTimeout(ctx, use.Config.normalized().DatabaseTimeout)
	defer cancel()
	bdresponse, serviceresponse := use.requestToRepository(use.Marathonrepo.GetMarathons(dbctx), traceid)
	if serviceresponse != nil {
		return serviceresponse
	}
	use.storeMarathons(ctx, bdresponse.Data.Marathons, traceid)
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Found %d active marathons", len(bdresponse.Data.Marathons)))
	return &ServiceResponse{Success: true, Data: Data{Marathons: bdresponse.Data.Marathons}}
}

// activeMarathons is the degraded variant used by search: failures give an empty list.
func (use *PhotoServiceImplement) activeMarathons(ctx context.Context, traceid string, cfg Config) []*model.Marathon {
	if marathons, ok := use.cachedMarathons(ctx, traceid); ok {
		return marathons
	}
	dbctx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()
	resp := use.Marathonrepo.GetMarathons(dbctx)
	if !resp.Success {
		msg := "record store returned no result"
		if resp.Errors != nil {
			msg = resp.Errors.Message
		}
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, fmt.Sprintf("Active marathons unavailable, returning none: %s", msg))
		return []*model.Marathon{}
	}
	use.storeMarathons(ctx, resp.Data.Marathons, traceid)
	return resp.Data.Marathons
}
func (use *PhotoServiceImplement) cachedMarathons(ctx context.Context, traceid string) ([]*model.Marathon, bool) {
	if use.Cache == nil {
		return nil, false
	}
	resp := use.Cache.GetMarathonsCache(ctx)
	if resp.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
		return nil, false
	}
	if !resp.Success {
		return nil, false
	}
	return resp.Data.Marathons, true
}
func (use *PhotoServiceImplement) storeMarathons(ctx context.Context, marathons []*model.Marathon, traceid string) {
	if use.Cache == nil {
		return
	}
	if resp := use.Cache.SetMarathonsCache(ctx, marathons); resp.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
	}
}

// invalidateMarathons drops the picker list and every search page, since pages embed it.
func (use *PhotoServiceImplement) invalidateMarathons(ctx context.Context, traceid string) {
	if use.Cache == nil {
		return
	}
	use.enqueueTask(ctx, func(taskctx context.Context) {
		for _, resp := range []*repository.RepositoryResponse{
			use.Cache.DeleteMarathonsCache(taskctx),
			use.Cache.DeleteSearchCache(taskctx),
		} {
			if resp.Errors != nil {
				use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, resp.Place, traceid, resp.Errors.Message)
			}
		}
	}, InvalidateCache, traceid)
}
func (use *PhotoServiceImplement) marathonFromRequest(userid string, req *model.MarathonRequest, place string, traceid string) (*model.Marathon, *ServiceResponse) {
	if req == nil {
		return nil, use.clientFailure(place, traceid, "Empty marathon request", erro.RequiredMarathonFields)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	req.EventDate = strings.TrimSpace(req.EventDate)
	if err := use.validate().Struct(req); err != nil {
		reason := erro.RequiredMarathonFields
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				if fe.Tag() == "datetime" {
					reason = erro.InvalidEventDate
					break
				}
				if fe.Tag() == "max" {
					reason = fmt.Sprintf("Field %s is too long", strings.ToLower(fe.Field()))
				}
			}
		}
		return nil, use.clientFailure(place, traceid, fmt.Sprintf("Marathon validation failed: %v", err), reason)
	}
	date, err := time.Parse(eventDateLayout, req.EventDate)
	if err != nil {
		return nil, use.clientFailure(place, traceid, fmt.Sprintf("Event date parse failed: %v", err), erro.InvalidEventDate)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.Marathon{
		UserID:    userid,
		Name:      req.Name,
		EventDate: date,
		Location:  req.Location,
		IsActive:  active,
	}, nil
}
var defaultValidator = validator.New()

func (use *PhotoServiceImplement) validate() *validator.Validate {
	if use.Validator == nil {
		return defaultValidator
	}
	return use.Validator
}
