package cloud

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/repository"
	"github.com/t3rm1n4l/go-mega"
	"go.uber.org/zap"
)

type PhotoCloud struct {
	cloudclient *CloudObject
}

func NewPhotoCloud(cl *CloudObject) *PhotoCloud {
	return &PhotoCloud{
		cloudclient: cl,
	}
}

type megaResult struct {
	url     string
	content []byte
	err     error
}

// UploadFile stores data under filename in the main folder and returns its public link.
// Mega calls are not cancelable, so ctx only bounds how long the caller waits.
// A retry under the same filename waits for the abandoned attempt and reuses its node.
func (client *PhotoCloud) UploadFile(ctx context.Context, data []byte, filename string, contentType string) *repository.RepositoryResponse {
	const place = UploadFile
	if ctx.Err() != nil {
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	}
	done := make(chan megaResult, 1)
	go func() {
		link, err := client.upload(data, filename)
		done <- megaResult{url: link, err: err}
	}()
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	case res := <-done:
		if res.err != nil {
			return repository.BadResponse(erro.ServerError(fmt.Sprintf("File upload %s error: %v", filename, res.err)), place)
		}
		return &repository.RepositoryResponse{Success: true,
			Data:           repository.Data{URL: res.url},
			Place:          place,
			SuccessMessage: fmt.Sprintf("Photo %s was successfully uploaded to the cloud (%d bytes uploaded)", filename, len(data)),
		}
	}
}
func (client *PhotoCloud) upload(data []byte, filename string) (string, error) {
	unlock := client.cloudclient.locks.lock(filename)
	defer unlock()
	node, err := client.cloudclient.connect.FindByName(client.cloudclient.mainfolder, filename)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", filename, err)
	}
	if node == nil {
		node, err = client.uploadTemp(data, filename)
		if err != nil {
			return "", err
		}
	} else {
		client.cloudclient.logger.Info("Photo already stored, reusing node", zap.String("filename", filename))
	}
	link, err := client.cloudclient.connect.Link(node)
	if err != nil {
		return "", fmt.Errorf("public link: %w", err)
	}
	return link, nil
}
func (client *PhotoCloud) uploadTemp(data []byte, filename string) (*mega.Node, error) {
	tempFile, err := os.CreateTemp("", "upload-*-"+filename)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := tempFile.Name()
	defer func() {
		if err := os.Remove(path); err != nil {
			client.cloudclient.logger.Warn("Failed to remove temp file", zap.String("path", path), zap.Error(err))
		}
	}()
	_, err = tempFile.Write(data)
	if cerr := tempFile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	return client.cloudclient.connect.Upload(path, client.cloudclient.mainfolder, filename)
}

// FetchFile downloads the bytes behind a link returned by UploadFile.
func (client *PhotoCloud) FetchFile(ctx context.Context, url string) *repository.RepositoryResponse {
	const place = FetchFile
	if ctx.Err() != nil {
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	}
	done := make(chan megaResult, 1)
	go func() {
		content, err := client.download(url)
		done <- megaResult{content: content, err: err}
	}()
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	case res := <-done:
		if res.err != nil {
			return repository.BadResponse(erro.ServerError(fmt.Sprintf("File download %s error: %v", url, res.err)), place)
		}
		return &repository.RepositoryResponse{Success: true, Data: repository.Data{Content: res.content}, Place: place,
			SuccessMessage: fmt.Sprintf("Photo was successfully downloaded from the cloud (%d bytes)", len(res.content))}
	}
}
func (client *PhotoCloud) download(url string) ([]byte, error) {
	node, err := client.findNode(url)
	if err != nil {
		return nil, err
	}
	tempFile, err := os.CreateTemp("", "photo-*")
	if err != nil {
		return nil, err
	}
	path := tempFile.Name()
	tempFile.Close()
	defer os.Remove(path)
	err = client.cloudclient.connect.Download(node, path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
func (client *PhotoCloud) findNode(url string) (*mega.Node, error) {
	handle := linkHandle(url)
	if handle == "" {
		return nil, fmt.Errorf("unrecognized link format")
	}
	node, err := client.cloudclient.connect.FindByHash(client.cloudclient.mainfolder, handle)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("photo file was not found in directory")
	}
	return node, nil
}

// linkHandle extracts the node handle from both the legacy "#!handle!key"
// and the current "/file/handle#key" public link formats.
func linkHandle(url string) string {
	if i := strings.Index(url, "#!"); i >= 0 {
		rest := url[i+2:]
		if j := strings.Index(rest, "!"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	if i := strings.Index(url, "/file/"); i >= 0 {
		rest := url[i+len("/file/"):]
		if j := strings.IndexAny(rest, "#?"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	return ""
}
