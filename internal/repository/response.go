package repository

import (
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/model"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}
type Data struct {
	Photo      *model.Photo
	Photos     []*model.Photo
	Marathon   *model.Marathon
	Marathons  []*model.Marathon
	Page       *model.PhotoPage
	URL        string
	Content    []byte
	Generation int64
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{
		Success: false,
		Errors:  err,
		Place:   place,
	}
}
