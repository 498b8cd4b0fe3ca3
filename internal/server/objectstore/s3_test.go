package objectstore

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *S3Store {
	s := NewS3Store(Config{
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
		Bucket:       "deadswitch",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
	})
	s.now = func() time.Time { return time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestPresignPut_SignsLocally(t *testing.T) {
	s := newTestStore()

	locator, rawURL, err := s.PresignPut(context.Background(), "alice")
	require.NoError(t, err)

	bucket, key, err := ParseLocator(locator)
	require.NoError(t, err)
	assert.Equal(t, "deadswitch", bucket)
	assert.True(t, strings.HasPrefix(key, "messages/alice/2025/03/07/"), key)

	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", u.Host)
	assert.Equal(t, "/deadswitch/"+key, u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestPresignGet_RoundTripsLocator(t *testing.T) {
	s := newTestStore()

	rawURL, err := s.PresignGet(context.Background(), "s3://deadswitch/messages/alice/x")
	require.NoError(t, err)
	assert.Contains(t, rawURL, "/deadswitch/messages/alice/x")

	_, err = s.PresignGet(context.Background(), "ipfs://Qm123")
	assert.ErrorIs(t, err, ErrNotObjectLocator)
}

func TestPresign_ErrorsPropagate(t *testing.T) {
	s := newTestStore()

	origLoad := loadDefaultAWSConfig
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, _, err := s.PresignPut(context.Background(), "alice")
	require.EqualError(t, err, "load-fail")

	loadDefaultAWSConfig = origLoad
	presignPutObject = func(*s3.PresignClient, context.Context, *s3.PutObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("put-fail")
	}
	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("get-fail")
	}

	_, _, err = s.PresignPut(context.Background(), "alice")
	require.EqualError(t, err, "put-fail")
	_, err = s.PresignGet(context.Background(), "s3://b/k")
	require.EqualError(t, err, "get-fail")
}

func TestParseLocator(t *testing.T) {
	tests := []struct {
		in      string
		bucket  string
		key     string
		wantErr bool
	}{
		{in: "s3://b/k", bucket: "b", key: "k"},
		{in: "s3://b/a/b/c", bucket: "b", key: "a/b/c"},
		{in: "s3://b", wantErr: true},
		{in: "s3:///k", wantErr: true},
		{in: "https://example.com/x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, k, err := ParseLocator(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotObjectLocator)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, b)
			assert.Equal(t, tt.key, k)
			assert.Equal(t, tt.in, FormatLocator(b, k))
		})
	}
}
