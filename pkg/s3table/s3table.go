package s3table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/tabcheck/pkg/csvtable"
	"github.com/dmitrymomot/tabcheck/pkg/tabular"
)

// S3Client defines the S3 operations used by Bucket.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config contains configuration for an audited S3 bucket.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`
	Region         string `env:"S3_REGION,required"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`          // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`  // For S3-compatible services like MinIO
}

// Option defines a function that configures Bucket construction.
type Option func(*options)

type options struct {
	client     S3Client
	httpClient *http.Client
}

// WithClient sets a custom pre-configured S3 client. Useful for testing
// with mocks.
func WithClient(client S3Client) Option {
	return func(o *options) { o.client = client }
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// Bucket exposes csv objects in one S3 bucket as tables.
type Bucket struct {
	client S3Client
	bucket string
}

// New creates a Bucket. Unless a client is injected, the AWS configuration
// is loaded with the given region, optional static credentials and optional
// custom endpoint.
func New(ctx context.Context, cfg Config, opts ...Option) (*Bucket, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, awsconfig.WithHTTPClient(o.httpClient))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsCfg, func(so *s3.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &Bucket{client: client, bucket: cfg.Bucket}, nil
}

// Object adapts a csv object to the tabular.Table contract. Every pass
// issues a fresh GetObject, which makes the table multi-pass; opts control
// csv parsing exactly as in csvtable.
func (b *Bucket) Object(ctx context.Context, key string, opts ...csvtable.Option) tabular.Table {
	return csvtable.FromOpener(func() (io.ReadCloser, error) {
		out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(b.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, classifyError(err, key)
		}
		return out.Body, nil
	}, opts...)
}

// classifyError converts S3 errors to domain-specific errors.
func classifyError(err error, key string) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %q", ErrObjectNotFound, key)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey":
			return fmt.Errorf("%w: %q", ErrObjectNotFound, key)
		case "NoSuchBucket":
			return ErrBucketNotFound
		case "AccessDenied":
			return fmt.Errorf("%w: %q", ErrAccessDenied, key)
		case "SlowDown", "ServiceUnavailable":
			return errors.Join(ErrServiceUnavailable, err)
		}
	}
	return err
}
