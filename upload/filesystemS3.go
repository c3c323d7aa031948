package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const s3RequestTimeout = 30 * time.Second

// FilesystemS3 stores reports as objects below a key prefix of an S3-compatible bucket
type FilesystemS3 struct {
	client     *s3.Client
	bucketName string
	prefix     string
}

// S3Config holds the configuration for S3 report storage
type S3Config struct {
	Endpoint        string // S3 endpoint URL (for S3-compatible services)
	Region          string // AWS region
	BucketName      string // S3 bucket name
	Prefix          string // Key prefix for reports
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	UseSSL          bool   // Scheme for endpoints given without one
}

// NewFilesystemS3 creates a new S3 filesystem instance with the specified configuration
func NewFilesystemS3(cfg S3Config) (Filesystem, error) {
	awsConfig, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, helper.NewError("load s3 config", err)
	}

	endpoint := endpointURL(cfg.Endpoint, cfg.UseSSL)
	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for MinIO and other S3-compatible services
		}
	})

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &FilesystemS3{
		client:     s3Client,
		bucketName: cfg.BucketName,
		prefix:     prefix,
	}, nil
}

// Write uploads a report
func (fs *FilesystemS3) Write(name string, reader io.Reader, size int64) error {
	key, err := fs.key(name)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(fs.bucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(helper.GetMimeType(name)),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s3RequestTimeout)
	defer cancel()

	_, err = fs.client.PutObject(ctx, input)
	if err != nil {
		return helper.NewError("put report", err)
	}
	return nil
}

// Open downloads a report and returns a ReadCloser. The body stays readable
// after Open returns, so no request timeout is applied.
func (fs *FilesystemS3) Open(name string) (io.ReadCloser, error) {
	key, err := fs.key(name)
	if err != nil {
		return nil, err
	}

	result, err := fs.client.GetObject(
		context.Background(),
		&s3.GetObjectInput{
			Bucket: aws.String(fs.bucketName),
			Key:    aws.String(key),
		},
	)
	if err != nil {
		return nil, helper.NewError("get report", notExist(err))
	}

	return result.Body, nil
}

// Delete removes a report
func (fs *FilesystemS3) Delete(name string) error {
	key, err := fs.key(name)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s3RequestTimeout)
	defer cancel()

	// DeleteObject succeeds for missing keys.
	_, err = fs.client.HeadObject(
		ctx,
		&s3.HeadObjectInput{
			Bucket: aws.String(fs.bucketName),
			Key:    aws.String(key),
		},
	)
	if err != nil {
		return helper.NewError("head report", notExist(err))
	}

	_, err = fs.client.DeleteObject(
		ctx,
		&s3.DeleteObjectInput{
			Bucket: aws.String(fs.bucketName),
			Key:    aws.String(key),
		},
	)
	if err != nil {
		return helper.NewError("delete report", err)
	}
	return nil
}

// ListFiles returns the reports directly below the key prefix
func (fs *FilesystemS3) ListFiles() ([]model.File, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(fs.bucketName),
		Prefix:    aws.String(fs.prefix),
		Delimiter: aws.String("/"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), s3RequestTimeout)
	defer cancel()

	files := []model.File{}
	paginator := s3.NewListObjectsV2Paginator(fs.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, helper.NewError("list reports", err)
		}

		for _, object := range page.Contents {
			if object.Key == nil {
				continue
			}
			name := strings.TrimPrefix(*object.Key, fs.prefix)
			if name == "" {
				continue
			}

			file := model.File{
				Name:     name,
				Size:     aws.ToInt64(object.Size),
				MimeType: helper.GetMimeType(name),
			}
			if object.LastModified != nil {
				file.ModifiedAt = *object.LastModified
			}
			files = append(files, file)
		}
	}

	return files, nil
}

func (fs *FilesystemS3) key(name string) (string, error) {
	name, err := CleanName(name)
	if err != nil {
		return "", err
	}
	return fs.prefix + name, nil
}

func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// notExist adds os.ErrNotExist to the not found errors of the S3 API.
func notExist(err error) error {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return errors.Join(os.ErrNotExist, err)
	}
	return err
}
