// Package objectstore adapts the S3-compatible blob backend holding file
// bodies. The server streams bodies through Put/Get or hands out presigned
// URLs so clients can transfer directly against the store.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/guardianos/guardian-sync/internal/common"
	sc "github.com/guardianos/guardian-sync/internal/server/config"
)

// Store is the blob interface the file service depends on. S3Store is the
// production implementation; tests substitute fakes.
type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Seams for tests; production code never reassigns these.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Store wraps one S3 client (internally pooled) plus its presign client.
// Non-presign calls are bounded by callTimeout.
type S3Store struct {
	client      *s3.Client
	presign     *s3.PresignClient
	bucket      string
	callTimeout time.Duration
}

// NewS3Store builds the S3 client from static credentials and the custom
// endpoint in cfg. Path-style addressing keeps MinIO-style backends happy.
func NewS3Store(ctx context.Context, cfg *sc.Config) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "")))
	if err != nil {
		return nil, fmt.Errorf("object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:      client,
		presign:     s3.NewPresignClient(client),
		bucket:      cfg.S3Bucket,
		callTimeout: cfg.CallTimeout,
	}, nil
}

// withCallTimeout bounds ctx by the configured call timeout, when set.
func (s *S3Store) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

// Put writes body under key.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	ctx, cancel := s.withCallTimeout(ctx)
	defer cancel()

	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", common.ErrStorage, key, err)
	}
	return nil
}

// Get returns the blob body as a stream. The caller must close it. The call
// timeout covers the body transfer; closing the body releases it.
func (s *S3Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	ctx, cancel := s.withCallTimeout(ctx)

	out, err := getObject(s.client, ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: get %s: %v", common.ErrStorage, key, err)
	}
	return &cancelOnClose{ReadCloser: out.Body, cancel: cancel}, nil
}

// Delete removes the blob under key.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	ctx, cancel := s.withCallTimeout(ctx)
	defer cancel()

	_, err := deleteObject(s.client, ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", common.ErrStorage, key, err)
	}
	return nil
}

// cancelOnClose ties the Get call's timeout context to the body's lifetime.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

// PresignPut returns a time-bounded URL allowing a direct client PUT of key.
func (s *S3Store) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	req, err := presignPutObject(s.presign, ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("%w: presign put %s: %v", common.ErrStorage, key, err)
	}
	return req.URL, nil
}

// PresignGet returns a time-bounded URL allowing a direct client GET of key.
func (s *S3Store) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("%w: presign get %s: %v", common.ErrStorage, key, err)
	}
	return req.URL, nil
}
