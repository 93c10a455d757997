package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// Environment variables read by S3ConfigFromEnv:
//
//	REFGENOME_S3_REGION=<region> (default us-east-1)
//	REFGENOME_S3_ENDPOINT=<url> (optional, for MinIO and friends)
//	REFGENOME_S3_PATH_STYLE=true|false (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (default chain)

// S3Config holds client construction parameters.
type S3Config struct {
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string // optional; falls back to the default credentials chain
	SecretAccessKey string
	SessionToken    string
	HTTPClient      *http.Client // optional
}

// S3ConfigFromEnv reads S3Config from the process environment.
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Region:    os.Getenv("REFGENOME_S3_REGION"),
		Endpoint:  os.Getenv("REFGENOME_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("REFGENOME_S3_PATH_STYLE"), "true"),
	}
}

// IsS3 reports whether loc is an s3:// URL.
func IsS3(loc string) bool { return strings.HasPrefix(loc, s3Scheme) }

// ParseS3 splits s3://bucket/key. Both parts must be non-empty.
func ParseS3(loc string) (bucket, key string, err error) {
	if !IsS3(loc) {
		return "", "", fmt.Errorf("not an s3 url: %q", loc)
	}
	rest := strings.TrimPrefix(loc, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url needs bucket and key: %q", loc)
	}
	return bucket, key, nil
}

// NewS3Client builds a client from cfg.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	}), nil
}

// GetObjectAPI is the slice of *s3.Client used here.
type GetObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// GetObject streams the object named by loc. The caller closes the body.
func GetObject(ctx context.Context, api GetObjectAPI, loc string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3(loc)
	if err != nil {
		return nil, err
	}
	out, err := api.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", loc, err)
	}
	return out.Body, nil
}

func openS3(ctx context.Context, loc string) (io.ReadCloser, error) {
	if _, _, err := ParseS3(loc); err != nil {
		return nil, err
	}
	client, err := NewS3Client(ctx, S3ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	return GetObject(ctx, client, loc)
}
