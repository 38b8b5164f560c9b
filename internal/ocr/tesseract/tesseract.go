// Package tesseract backs ocr.Recognizer with the Tesseract engine via gosseract.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/robklaiss/foteam/internal/ocr"
)

// bibWhitelist keeps Tesseract focused on bib characters.
const bibWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz#-/ "

type TesseractRecognizer struct {
	clientFactory func() *gosseract.Client
	languages     []string
}

func NewTesseractRecognizer(languages []string) *TesseractRecognizer {
	return &TesseractRecognizer{clientFactory: gosseract.NewClient, languages: languages}
}

// Recognize returns one block holding the whole-image text, followed by one
// block per recognized line.
func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte) ([]ocr.TextBlock, error) {
	c := r.clientFactory()
	defer c.Close()
	if len(r.languages) > 0 {
		if err := c.SetLanguage(r.languages...); err != nil {
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}
	if err := c.SetWhitelist(bibWhitelist); err != nil {
		return nil, fmt.Errorf("set whitelist: %w", err)
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := c.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}
	plain := strings.TrimSpace(text)
	if plain == "" {
		return []ocr.TextBlock{}, nil
	}
	lines, avgConf := lineBlocks(c)
	blocks := make([]ocr.TextBlock, 0, len(lines)+1)
	blocks = append(blocks, ocr.TextBlock{Text: plain, Confidence: avgConf})
	return append(blocks, lines...), nil
}
func lineBlocks(c *gosseract.Client) ([]ocr.TextBlock, float64) {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil || len(boxes) == 0 {
		return nil, 0
	}
	lines := make([]ocr.TextBlock, 0, len(boxes))
	var sum float64
	for _, b := range boxes {
		conf := b.Confidence / 100.0
		sum += conf
		lines = append(lines, ocr.TextBlock{Text: strings.TrimSpace(b.Word), Confidence: conf})
	}
	return lines, sum / float64(len(lines))
}
