package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/metrics"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/repository"
)

type MarathonDatabase struct {
	databaseclient *DBObject
}

func NewMarathonDatabase(db *DBObject) *MarathonDatabase {
	return &MarathonDatabase{databaseclient: db}
}

const marathonColumns = `marathonid, userid, name, event_date, location, is_active, created_at, updated_at`

const (
	insertMarathonQuery        = `INSERT INTO marathons (userid, name, event_date, location, is_active) VALUES ($1, $2, $3, $4, $5) RETURNING marathonid, created_at, updated_at`
	updateMarathonQuery        = `UPDATE marathons SET name = $1, event_date = $2, location = $3, is_active = $4, updated_at = now() WHERE marathonid = $5 AND userid = $6 RETURNING updated_at`
	selectMarathonQuery        = `SELECT ` + marathonColumns + ` FROM marathons WHERE marathonid = $1`
	selectActiveMarathonsQuery = `SELECT ` + marathonColumns + ` FROM marathons WHERE is_active = TRUE ORDER BY event_date DESC, name`
	selectUserMarathonsQuery   = `SELECT ` + marathonColumns + ` FROM marathons WHERE userid = $1 ORDER BY event_date DESC, name`
)

func (mr *MarathonDatabase) CreateMarathon(ctx context.Context, marathon *model.Marathon) *repository.RepositoryResponse {
	const place = CreateMarathon
	defer metrics.DBMetrics(place, time.Now())
	err := mr.databaseclient.mapstmt[insertMarathonQuery].QueryRowContext(ctx, marathon.UserID, marathon.Name, marathon.EventDate, marathon.Location, marathon.IsActive).
		Scan(&marathon.ID, &marathon.CreatedAt, &marathon.UpdatedAt)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMarathons, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{Marathon: marathon}, SuccessMessage: "Successful create marathon in database"}
}

// UpdateMarathon overwrites the editable fields of a marathon owned by marathon.UserID.
func (mr *MarathonDatabase) UpdateMarathon(ctx context.Context, marathon *model.Marathon) *repository.RepositoryResponse {
	const place = UpdateMarathon
	defer metrics.DBMetrics(place, time.Now())
	current, err := mr.selectMarathon(ctx, marathon.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.BadResponse(erro.ClientError(erro.NonExistentData), place)
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMarathons, err)), place)
	}
	if current.UserID != marathon.UserID {
		return repository.BadResponse(erro.ClientError(erro.UpdateSomeoneMarathon), place)
	}
	err = mr.databaseclient.mapstmt[updateMarathonQuery].QueryRowContext(ctx, marathon.Name, marathon.EventDate, marathon.Location, marathon.IsActive, marathon.ID, marathon.UserID).
		Scan(&marathon.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.BadResponse(erro.ClientError(erro.NonExistentData), place)
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMarathons, err)), place)
	}
	marathon.CreatedAt = current.CreatedAt
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{Marathon: marathon}, SuccessMessage: "Successful update marathon in database"}
}
func (mr *MarathonDatabase) GetMarathon(ctx context.Context, marathonid string) *repository.RepositoryResponse {
	const place = GetMarathon
	defer metrics.DBMetrics(place, time.Now())
	marathon, err := mr.selectMarathon(ctx, marathonid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.BadResponse(erro.ClientError(erro.NonExistentData), place)
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMarathons, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{Marathon: marathon}, SuccessMessage: "Successful get marathon from database"}
}
func (mr *MarathonDatabase) GetMarathons(ctx context.Context) *repository.RepositoryResponse {
	const place = GetMarathons
	defer metrics.DBMetrics(place, time.Now())
	rows, err := mr.databaseclient.mapstmt[selectActiveMarathonsQuery].QueryContext(ctx)
	return mr.collect(rows, err, place, "Successful get active marathons from database")
}
func (mr *MarathonDatabase) GetUserMarathons(ctx context.Context, userid string) *repository.RepositoryResponse {
	const place = GetUserMarathons
	defer metrics.DBMetrics(place, time.Now())
	rows, err := mr.databaseclient.mapstmt[selectUserMarathonsQuery].QueryContext(ctx, userid)
	return mr.collect(rows, err, place, "Successful get user marathons from database")
}
func (mr *MarathonDatabase) selectMarathon(ctx context.Context, marathonid string) (*model.Marathon, error) {
	var marathon model.Marathon
	err := mr.databaseclient.mapstmt[selectMarathonQuery].QueryRowContext(ctx, marathonid).
		Scan(&marathon.ID, &marathon.UserID, &marathon.Name, &marathon.EventDate, &marathon.Location, &marathon.IsActive, &marathon.CreatedAt, &marathon.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &marathon, nil
}
func (mr *MarathonDatabase) collect(rows *sql.Rows, err error, place string, message string) *repository.RepositoryResponse {
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMarathons, err)), place)
	}
	defer rows.Close()
	marathons := make([]*model.Marathon, 0)
	for rows.Next() {
		var marathon model.Marathon
		err := rows.Scan(&marathon.ID, &marathon.UserID, &marathon.Name, &marathon.EventDate, &marathon.Location, &marathon.IsActive, &marathon.CreatedAt, &marathon.UpdatedAt)
		if err != nil {
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		marathons = append(marathons, &marathon)
	}
	if err := rows.Err(); err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqMarathons, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{Marathons: marathons}, SuccessMessage: message}
}
