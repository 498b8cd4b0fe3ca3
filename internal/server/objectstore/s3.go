// Package objectstore issues presigned S3 URLs for sealed message blobs so
// ciphertext goes straight from the client to the bucket.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// LocatorScheme prefixes locators that point into the object store.
const LocatorScheme = "s3://"

// PresignExpiry is how long issued URLs stay valid.
const PresignExpiry = 15 * time.Minute

var ErrNotObjectLocator = errors.New("locator does not point into the object store")

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Config describes an S3-compatible backend such as MinIO.
type Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

type S3Store struct {
	cfg Config
	now func() time.Time
}

func NewS3Store(cfg Config) *S3Store {
	return &S3Store{cfg: cfg, now: time.Now}
}

func (s *S3Store) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// NewMessageKey returns a fresh object key for a message of owner.
func (s *S3Store) NewMessageKey(owner string) string {
	d := s.now().UTC()
	return fmt.Sprintf("messages/%s/%04d/%02d/%02d/%v", url.PathEscape(owner), d.Year(), d.Month(), d.Day(), uuid.New())
}

// PresignPut returns the locator of a new object for owner and a URL the
// client can PUT the ciphertext to.
func (s *S3Store) PresignPut(ctx context.Context, owner string) (string, string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.cfg.Bucket
	key := s.NewMessageKey(owner)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}

	return FormatLocator(bucket, key), req.URL, nil
}

// PresignGet returns a download URL for an object locator.
func (s *S3Store) PresignGet(ctx context.Context, locator string) (string, error) {
	bucket, key, err := ParseLocator(locator)
	if err != nil {
		return "", err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func FormatLocator(bucket, key string) string {
	return LocatorScheme + bucket + "/" + key
}

// ParseLocator splits "s3://bucket/key" into its parts.
func ParseLocator(locator string) (string, string, error) {
	rest, ok := strings.CutPrefix(locator, LocatorScheme)
	if !ok {
		return "", "", ErrNotObjectLocator
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", ErrNotObjectLocator
	}
	return bucket, key, nil
}
