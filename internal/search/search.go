// Package search filters, orders and paginates photo records by bib number.
package search

import (
	"sort"
	"strings"

	"github.com/robklaiss/foteam/internal/model"
)

// ParseNumbers splits a comma separated query into trimmed, non-empty terms.
func ParseNumbers(raw string) []string {
	terms := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// NormalizeNumbers trims every term and drops the empty ones.
func NormalizeNumbers(numbers []string) []string {
	terms := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if t := strings.TrimSpace(n); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// Matches reports whether any term occurs inside the comma joined candidate
// numbers of the photo. An empty term list matches every photo.
func Matches(photo *model.Photo, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	if len(photo.Numbers) == 0 {
		return false
	}
	joined := strings.Join(photo.Numbers, ",")
	for _, t := range terms {
		if strings.Contains(joined, t) {
			return true
		}
	}
	return false
}

// Filter keeps the photos matching terms, preserving input order.
func Filter(photos []*model.Photo, terms []string) []*model.Photo {
	matched := make([]*model.Photo, 0, len(photos))
	for _, p := range photos {
		if Matches(p, terms) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Sort orders photos most recent first, breaking ties by descending ID.
func Sort(photos []*model.Photo) {
	sort.SliceStable(photos, func(i, j int) bool {
		a, b := photos[i], photos[j]
		if !a.UploadedAt.Equal(b.UploadedAt) {
			return a.UploadedAt.After(b.UploadedAt)
		}
		return a.ID > b.ID
	})
}

// TotalPages returns ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Window returns the 1-based page of photos. Pages past the end are empty.
func Window(photos []*model.Photo, page, pageSize int) []*model.Photo {
	if page < 1 || pageSize < 1 {
		return []*model.Photo{}
	}
	start := (page - 1) * pageSize
	if start >= len(photos) {
		return []*model.Photo{}
	}
	end := start + pageSize
	if end > len(photos) {
		end = len(photos)
	}
	return photos[start:end]
}

// Paginate filters, sorts and windows photos in one pass. It returns the page
// together with the number of matching photos before windowing.
func Paginate(photos []*model.Photo, terms []string, page, pageSize int) ([]*model.Photo, int) {
	matched := Filter(photos, terms)
	Sort(matched)
	return Window(matched, page, pageSize), len(matched)
}
