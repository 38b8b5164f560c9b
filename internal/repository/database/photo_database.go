package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/metrics"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/repository"
)

type PhotoDatabase struct {
	databaseclient *DBObject
}

func NewPhotoDatabase(db *DBObject) *PhotoDatabase {
	return &PhotoDatabase{databaseclient: db}
}

const photoColumns = `photoid, userid, marathonid, filename, url, size, content_type, numbers, uploaded_at`

const (
	insertPhotoQuery          = `INSERT INTO photos (userid, marathonid, filename, url, size, content_type, numbers) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING photoid, uploaded_at`
	selectPhotosQuery         = `SELECT ` + photoColumns + ` FROM photos ORDER BY uploaded_at DESC, photoid DESC`
	selectMarathonPhotosQuery = `SELECT ` + photoColumns + ` FROM photos WHERE marathonid = $1 ORDER BY uploaded_at DESC, photoid DESC`
)

// LoadPhoto inserts the record and fills in the id and upload time assigned by the database.
func (ph *PhotoDatabase) LoadPhoto(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse {
	const place = LoadPhoto
	defer metrics.DBMetrics(place, time.Now())
	numbers := photo.Numbers
	if numbers == nil {
		numbers = []string{}
	}
	var marathonid sql.NullString
	if photo.MarathonID != nil {
		marathonid = sql.NullString{String: *photo.MarathonID, Valid: true}
	}
	err := ph.databaseclient.mapstmt[insertPhotoQuery].QueryRowContext(ctx, photo.UserID, marathonid, photo.Filename, photo.URL, photo.Size, photo.ContentType, pq.Array(numbers)).
		Scan(&photo.ID, &photo.UploadedAt)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	photo.Numbers = numbers
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{Photo: photo}, SuccessMessage: "Successful load photo metadata to database"}
}

// GetPhotos returns every stored photo, most recent first. A non-nil marathonid narrows the result to that marathon.
func (ph *PhotoDatabase) GetPhotos(ctx context.Context, marathonid *string) *repository.RepositoryResponse {
	const place = GetPhotos
	defer metrics.DBMetrics(place, time.Now())
	var rows *sql.Rows
	var err error
	if marathonid != nil {
		rows, err = ph.databaseclient.mapstmt[selectMarathonPhotosQuery].QueryContext(ctx, *marathonid)
	} else {
		rows, err = ph.databaseclient.mapstmt[selectPhotosQuery].QueryContext(ctx)
	}
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	photoslice := make([]*model.Photo, 0)
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		photoslice = append(photoslice, photo)
	}
	if err := rows.Err(); err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: photoslice}, Place: place, SuccessMessage: "Successful get photos metadata from database"}
}
func scanPhoto(rows *sql.Rows) (*model.Photo, error) {
	var photo model.Photo
	var marathonid sql.NullString
	var numbers pq.StringArray
	err := rows.Scan(&photo.ID, &photo.UserID, &marathonid, &photo.Filename, &photo.URL, &photo.Size, &photo.ContentType, &numbers, &photo.UploadedAt)
	if err != nil {
		return nil, err
	}
	if marathonid.Valid {
		id := marathonid.String
		photo.MarathonID = &id
	}
	photo.Numbers = []string(numbers)
	if photo.Numbers == nil {
		photo.Numbers = []string{}
	}
	return &photo, nil
}
