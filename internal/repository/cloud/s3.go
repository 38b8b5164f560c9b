package cloud

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/robklaiss/foteam/internal/repository"
	"go.uber.org/zap"
)

type S3Object struct {
	connect s3iface.S3API
	bucket  string
	prefix  string
	baseURL string
	logger  logger.PhotoLoggerInterface
}

func NewS3Connection(config configs.S3Config, log logger.PhotoLoggerInterface) (*S3Object, error) {
	awsConfig := &aws.Config{Region: aws.String(config.Region)}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	awsSession, err := session.NewSession(awsConfig)
	if err != nil {
		log.Error("Failed to create AWS session", zap.Error(err))
		return nil, err
	}
	log.Info("Successful connect to S3-Client", zap.String("bucket", config.Bucket))
	return NewS3Object(s3.New(awsSession), config, log), nil
}
func NewS3Object(client s3iface.S3API, config configs.S3Config, log logger.PhotoLoggerInterface) *S3Object {
	baseURL := strings.TrimSuffix(config.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Bucket, config.Region)
	}
	return &S3Object{
		connect: client,
		bucket:  config.Bucket,
		prefix:  strings.Trim(config.Prefix, "/"),
		baseURL: baseURL,
		logger:  log,
	}
}

type S3PhotoCloud struct {
	cloudclient *S3Object
}

func NewS3PhotoCloud(cl *S3Object) *S3PhotoCloud {
	return &S3PhotoCloud{cloudclient: cl}
}
func (client *S3PhotoCloud) key(filename string) string {
	if client.cloudclient.prefix == "" {
		return filename
	}
	return client.cloudclient.prefix + "/" + filename
}
func (client *S3PhotoCloud) UploadFile(ctx context.Context, data []byte, filename string, contentType string) *repository.RepositoryResponse {
	const place = UploadFile
	key := client.key(filename)
	_, err := client.cloudclient.connect.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(client.cloudclient.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf("File upload %s error: %v", filename, err)), place)
	}
	return &repository.RepositoryResponse{Success: true,
		Data:           repository.Data{URL: client.cloudclient.baseURL + "/" + key},
		Place:          place,
		SuccessMessage: fmt.Sprintf("Photo %s was successfully uploaded to the bucket (%d bytes uploaded)", filename, len(data)),
	}
}
func (client *S3PhotoCloud) FetchFile(ctx context.Context, url string) *repository.RepositoryResponse {
	const place = FetchFile
	key := strings.TrimPrefix(url, client.cloudclient.baseURL+"/")
	if key == url || key == "" {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf("URL %s does not belong to the bucket", url)), place)
	}
	out, err := client.cloudclient.connect.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(client.cloudclient.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf("File download %s error: %v", key, err)), place)
	}
	defer out.Body.Close()
	content, err := io.ReadAll(out.Body)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf("File read %s error: %v", key, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Content: content}, Place: place,
		SuccessMessage: fmt.Sprintf("Photo was successfully downloaded from the bucket (%d bytes)", len(content))}
}
