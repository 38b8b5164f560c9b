package ocr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

type stubRecognizer struct {
	blocks []TextBlock
	err    error
	calls  int
}

func (s *stubRecognizer) Recognize(ctx context.Context, image []byte) ([]TextBlock, error) {
	s.calls++
	return s.blocks, s.err
}

type stubFetcher struct {
	data []byte
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return s.data, s.err
}

func TestEngine_RecognizeText(t *testing.T) {
	rec := &stubRecognizer{blocks: []TextBlock{{Text: "Bib 042"}}}
	blocks, err := NewEngine(stubFetcher{data: pngBytes}, rec).RecognizeText(context.Background(), "https://cdn/p.png")
	require.NoError(t, err)
	assert.Equal(t, "Bib 042", blocks[0].Text)
}

func TestEngine_NoTextIsEmptyNotError(t *testing.T) {
	blocks, err := NewEngine(stubFetcher{data: pngBytes}, &stubRecognizer{}).RecognizeText(context.Background(), "u")
	require.NoError(t, err)
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestEngine_Failures(t *testing.T) {
	rec := &stubRecognizer{}
	_, err := NewEngine(stubFetcher{data: []byte("plain text, not an image")}, rec).RecognizeText(context.Background(), "u")
	require.ErrorIs(t, err, ErrNotImage)
	assert.Equal(t, 0, rec.calls)

	_, err = NewEngine(stubFetcher{err: errors.New("timeout")}, rec).RecognizeText(context.Background(), "u")
	require.Error(t, err)

	_, err = NewEngine(stubFetcher{data: pngBytes}, &stubRecognizer{err: errors.New("engine crashed")}).RecognizeText(context.Background(), "u")
	require.Error(t, err)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write(pngBytes)
		case "/big.png":
			w.Write(make([]byte, 100))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second, 64)
	data, err := f.Fetch(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.png")
	require.EqualError(t, err, "status code: 404")

	_, err = f.Fetch(context.Background(), srv.URL+"/big.png")
	require.Error(t, err)

	_, err = f.Fetch(context.Background(), "ftp://example.com/a.png")
	require.Error(t, err)
}

type stubStore struct {
	resp *repository.RepositoryResponse
}

func (s stubStore) FetchFile(ctx context.Context, url string) *repository.RepositoryResponse {
	return s.resp
}

func TestStoreFetcher(t *testing.T) {
	ok := NewStoreFetcher(stubStore{resp: &repository.RepositoryResponse{Success: true, Data: repository.Data{Content: pngBytes}}})
	data, err := ok.Fetch(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	failing := NewStoreFetcher(stubStore{resp: repository.BadResponse(erro.ServerError("File download error"), "Repository-FetchFile")})
	_, err = failing.Fetch(context.Background(), "u")
	require.EqualError(t, err, "File download error")
}
