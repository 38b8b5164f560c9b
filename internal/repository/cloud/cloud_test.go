package cloud

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
	failPut bool
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.failPut {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = body
	return &s3.PutObjectOutput{}, nil
}
func (f *fakeS3) GetObjectWithContext(ctx aws.Context, in *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func TestS3PhotoCloud_UploadThenFetch(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	cl := NewS3PhotoCloud(NewS3Object(fake, configs.S3Config{Bucket: "photos", Region: "us-east-1", Prefix: "/uploads/"}, logger.NewNopLogger()))

	up := cl.UploadFile(context.Background(), []byte("jpeg-bytes"), "abc.jpg", "image/jpeg")
	require.True(t, up.Success)
	assert.Equal(t, "https://photos.s3.us-east-1.amazonaws.com/uploads/abc.jpg", up.Data.URL)
	assert.Equal(t, []byte("jpeg-bytes"), fake.objects["photos/uploads/abc.jpg"])

	down := cl.FetchFile(context.Background(), up.Data.URL)
	require.True(t, down.Success)
	assert.Equal(t, []byte("jpeg-bytes"), down.Data.Content)
}

func TestS3PhotoCloud_Errors(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, failPut: true}
	cl := NewS3PhotoCloud(NewS3Object(fake, configs.S3Config{Bucket: "photos", PublicBaseURL: "https://cdn.example.com/"}, logger.NewNopLogger()))

	up := cl.UploadFile(context.Background(), []byte("x"), "abc.png", "image/png")
	require.False(t, up.Success)
	assert.Equal(t, erro.ServerErrorType, up.Errors.Type)
	assert.Equal(t, UploadFile, up.Place)

	foreign := cl.FetchFile(context.Background(), "https://elsewhere.example.com/abc.png")
	require.False(t, foreign.Success)

	missing := cl.FetchFile(context.Background(), "https://cdn.example.com/abc.png")
	require.False(t, missing.Success)
	assert.Equal(t, FetchFile, missing.Place)
}

func TestLinkHandle(t *testing.T) {
	assert.Equal(t, "AbCdEf12", linkHandle("https://mega.co.nz/#!AbCdEf12!key-part"))
	assert.Equal(t, "AbCdEf12", linkHandle("https://mega.nz/file/AbCdEf12#key-part"))
	assert.Equal(t, "", linkHandle("https://example.com/photo.jpg"))
}
