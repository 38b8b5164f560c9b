package cloud

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/robklaiss/foteam/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t3rm1n4l/go-mega"
)

type fakeMega struct {
	mu      sync.Mutex
	byName  map[string]*mega.Node
	byHash  map[string]*mega.Node
	links   map[*mega.Node]string
	content map[*mega.Node][]byte
	paths   []string
	uploads int
	gate    chan struct{}
	started chan struct{}
}

func newFakeMega() *fakeMega {
	return &fakeMega{
		byName:  map[string]*mega.Node{},
		byHash:  map[string]*mega.Node{},
		links:   map[*mega.Node]string{},
		content: map[*mega.Node][]byte{},
	}
}
func (f *fakeMega) Upload(srcpath string, parent *mega.Node, name string) (*mega.Node, error) {
	data, err := os.ReadFile(srcpath)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.uploads++
	f.paths = append(f.paths, srcpath)
	gate := f.gate
	f.gate = nil
	f.mu.Unlock()
	if gate != nil {
		close(f.started)
		<-gate
	}
	if _, err := os.Stat(srcpath); err != nil {
		return nil, err
	}
	node := &mega.Node{}
	hash := "H" + name[:4]
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byName[name] = node
	f.byHash[hash] = node
	f.links[node] = "https://mega.nz/file/" + hash + "#key"
	f.content[node] = data
	return node, nil
}
func (f *fakeMega) Link(node *mega.Node) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.links[node]
	if !ok {
		return "", errors.New("unknown node")
	}
	return link, nil
}
func (f *fakeMega) Download(node *mega.Node, dstpath string) error {
	f.mu.Lock()
	data := f.content[node]
	f.mu.Unlock()
	return os.WriteFile(dstpath, data, 0600)
}
func (f *fakeMega) FindByName(parent *mega.Node, name string) (*mega.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byName[name], nil
}
func (f *fakeMega) FindByHash(parent *mega.Node, hash string) (*mega.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byHash[hash], nil
}
func (f *fakeMega) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploads
}

func newMegaCloud(fake *fakeMega) *PhotoCloud {
	return NewPhotoCloud(newCloudObject(fake, &mega.Node{}, logger.NewNopLogger()))
}

func TestPhotoCloud_UploadThenFetch(t *testing.T) {
	fake := newFakeMega()
	cl := newMegaCloud(fake)

	up := cl.UploadFile(context.Background(), []byte("jpeg-bytes"), "abcd-1.jpg", "image/jpeg")
	require.True(t, up.Success)
	assert.Equal(t, "https://mega.nz/file/Habcd#key", up.Data.URL)

	down := cl.FetchFile(context.Background(), up.Data.URL)
	require.True(t, down.Success)
	assert.Equal(t, []byte("jpeg-bytes"), down.Data.Content)

	missing := cl.FetchFile(context.Background(), "https://mega.nz/file/Hzzzz#key")
	require.False(t, missing.Success)
	assert.Equal(t, FetchFile, missing.Place)
}

func TestPhotoCloud_RetryAfterTimeoutReusesNode(t *testing.T) {
	fake := newFakeMega()
	release := make(chan struct{})
	fake.gate = release
	fake.started = make(chan struct{})
	cl := newMegaCloud(fake)
	data := []byte("png-bytes")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	first := cl.UploadFile(ctx, data, "f00d-2.png", "image/png")
	require.False(t, first.Success)
	assert.Equal(t, erro.ServerError(erro.ContextCanceled), first.Errors)
	<-fake.started

	retryctx, retrycancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer retrycancel()
	result := make(chan *repository.RepositoryResponse, 1)
	go func() {
		result <- cl.UploadFile(retryctx, data, "f00d-2.png", "image/png")
	}()
	close(release)
	second := <-result

	require.True(t, second.Success)
	assert.Equal(t, "https://mega.nz/file/Hf00d#key", second.Data.URL)
	assert.Equal(t, 1, fake.uploadCount())
	assert.Equal(t, 0, cl.cloudclient.locks.size())
}

func TestPhotoCloud_ExistingNodeIsNotUploadedAgain(t *testing.T) {
	fake := newFakeMega()
	cl := newMegaCloud(fake)
	first := cl.UploadFile(context.Background(), []byte("x"), "beef-3.gif", "image/gif")
	require.True(t, first.Success)
	second := cl.UploadFile(context.Background(), []byte("x"), "beef-3.gif", "image/gif")
	require.True(t, second.Success)
	assert.Equal(t, first.Data.URL, second.Data.URL)
	assert.Equal(t, 1, fake.uploadCount())
}

func TestPhotoCloud_UploadsUseSeparateTempFiles(t *testing.T) {
	fake := newFakeMega()
	cl := newMegaCloud(fake)
	require.True(t, cl.UploadFile(context.Background(), []byte("a"), "aaaa-1.png", "image/png").Success)
	require.True(t, cl.UploadFile(context.Background(), []byte("b"), "bbbb-2.png", "image/png").Success)

	require.Len(t, fake.paths, 2)
	assert.NotEqual(t, fake.paths[0], fake.paths[1])
	assert.NotEqual(t, filepath.Join(os.TempDir(), "aaaa-1.png"), fake.paths[0])
	for _, path := range fake.paths {
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	}
}
