package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/handlers/response"
	"github.com/robklaiss/foteam/internal/search"
)

// multipartOverhead leaves room for the form boundaries and the marathon_id field.
const multipartOverhead = 1 << 20

func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	const place = API_UploadPhoto
	traceID := getTraceID(r)
	userID, ok := h.getUserID(w, r, traceID, place)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.limits.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.limits.MaxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.clientError(w, r, traceID, place, fmt.Sprintf("Request body too large: %v", err), erro.LargeFile)
			return
		}
		h.clientError(w, r, traceID, place, fmt.Sprintf("ParseMultipartForm Error: %v", err), erro.InvalidMultipart)
		return
	}
	defer r.MultipartForm.RemoveAll()
	file, header, err := r.FormFile("file")
	if err != nil {
		h.clientError(w, r, traceID, place, fmt.Sprintf("FormFile Error: %v", err), erro.EmptyFile)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.clientError(w, r, traceID, place, fmt.Sprintf("ReadAll Error: %v", err), erro.InvalidMultipart)
		return
	}
	serviceresponse := h.services.UploadPhoto(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), data, r.FormValue("marathon_id"))
	if h.badServiceResponse(w, r, serviceresponse, traceID, place) {
		return
	}
	response.SendResponse(r.Context(), w, true, map[string]any{"photo": serviceresponse.Data.Photo}, nil, http.StatusCreated, traceID, place, h.logproducer)
}

// SearchPhotos serves GET /photos?marathon_id=&search_numbers=1,2&page=&page_size=.
func (h *Handler) SearchPhotos(w http.ResponseWriter, r *http.Request) {
	const place = API_SearchPhotos
	traceID := getTraceID(r)
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.clientError(w, r, traceID, place, fmt.Sprintf("Invalid page: %v", err), erro.InvalidPageNumber)
		return
	}
	pageSize, err := queryInt(r, "page_size", h.limits.DefaultPageSize)
	if err != nil {
		h.clientError(w, r, traceID, place, fmt.Sprintf("Invalid page_size: %v", err), erro.InvalidPageNumber)
		return
	}
	query := r.URL.Query()
	numbers := search.ParseNumbers(query.Get("search_numbers"))
	serviceresponse := h.services.SearchPhotos(r.Context(), query.Get("marathon_id"), numbers, page, pageSize)
	if h.badServiceResponse(w, r, serviceresponse, traceID, place) {
		return
	}
	result := serviceresponse.Data.Page
	response.SendResponse(r.Context(), w, true, map[string]any{
		"photos":         result.Photos,
		"marathons":      result.Marathons,
		"total":          result.Total,
		"total_pages":    result.TotalPages,
		"page":           result.Page,
		"page_size":      result.PageSize,
		"search_numbers": numbers,
	}, nil, http.StatusOK, traceID, place, h.logproducer)
}
