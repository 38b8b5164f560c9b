// Package ocr reads text out of stored photos.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// TextBlock is one recognized region. The first block returned is the primary one.
type TextBlock struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Recognizer runs OCR over raw image bytes.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) ([]TextBlock, error)
}

// ImageFetcher resolves a stored photo URL to its bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

var ErrNotImage = errors.New("fetched content is not an image")

type Engine struct {
	fetcher    ImageFetcher
	recognizer Recognizer
}

func NewEngine(fetcher ImageFetcher, recognizer Recognizer) *Engine {
	return &Engine{fetcher: fetcher, recognizer: recognizer}
}

// RecognizeText fetches the image behind url and returns its text blocks.
// An empty slice means no text was found.
func (e *Engine) RecognizeText(ctx context.Context, url string) ([]TextBlock, error) {
	data, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if mime := mimetype.Detect(data); !strings.HasPrefix(mime.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, mime.String())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blocks, err := e.recognizer.Recognize(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}
	if blocks == nil {
		blocks = []TextBlock{}
	}
	return blocks, nil
}
