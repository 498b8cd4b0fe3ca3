package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/deadswitch/internal/cryptox"
)

// blobServer is a single-object stand-in for a presigned bucket URL.
type blobServer struct {
	mu   sync.Mutex
	body []byte
}

func (b *blobServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		b.body = data
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		if b.body == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(b.body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newBlobServer(t *testing.T) (*blobServer, string) {
	t.Helper()
	b := &blobServer{}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return b, srv.URL + "/messages/key"
}

func TestStoreThenFetch(t *testing.T) {
	ctx := context.Background()
	blob, url := newBlobServer(t)
	fc := newFakeClient()
	fc.uploadURL, fc.locator, fc.downloadOK = url, "s3://bucket/messages/key", true
	svc := NewMessageService(fc)

	hash, locator, err := svc.Store(ctx, []byte("the keys are under the mat"), []byte("secret"))
	require.NoError(t, err)
	assert.Len(t, hash, 64)
	assert.Equal(t, "s3://bucket/messages/key", locator)
	assert.Equal(t, hash, fc.setHash)
	assert.Equal(t, cryptox.MessageHash(blob.body), hash)
	assert.NotContains(t, string(blob.body), "under the mat")

	plain, err := svc.Fetch(ctx, "alice", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "the keys are under the mat", string(plain))
}

func TestFetch_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	_, url := newBlobServer(t)
	fc := newFakeClient()
	fc.uploadURL, fc.locator, fc.downloadOK = url, "s3://b/k", true
	svc := NewMessageService(fc)

	_, _, err := svc.Store(ctx, []byte("hello"), []byte("right"))
	require.NoError(t, err)

	_, err = svc.Fetch(ctx, "alice", []byte("wrong"))
	assert.ErrorIs(t, err, cryptox.ErrSealedMessage)
}

func TestFetch_Tampered(t *testing.T) {
	ctx := context.Background()
	blob, url := newBlobServer(t)
	fc := newFakeClient()
	fc.uploadURL, fc.locator, fc.downloadOK = url, "s3://b/k", true
	svc := NewMessageService(fc)

	_, _, err := svc.Store(ctx, []byte("hello"), []byte("pw"))
	require.NoError(t, err)
	blob.body[len(blob.body)-1] ^= 0xff

	_, err = svc.Fetch(ctx, "alice", []byte("pw"))
	assert.ErrorIs(t, err, ErrMessageTampered)
}

func TestFetch_NoMessage(t *testing.T) {
	svc := NewMessageService(newFakeClient())

	_, err := svc.Fetch(context.Background(), "alice", []byte("pw"))
	assert.ErrorIs(t, err, ErrNoMessage)
}

func TestFetch_LocatorNotDownloadable(t *testing.T) {
	fc := newFakeClient()
	require.NoError(t, fc.SetMessage(context.Background(), "abc", "ipfs://Qm"))

	_, err := NewMessageService(fc).Fetch(context.Background(), "alice", []byte("pw"))
	assert.ErrorIs(t, err, ErrNoMessage)
}

func TestStore_UploadFailureSkipsSetMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	fc := newFakeClient()
	fc.uploadURL, fc.locator = srv.URL, "s3://b/k"

	_, _, err := NewMessageService(fc).Store(context.Background(), []byte("x"), []byte("pw"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "upload error")
	assert.Empty(t, fc.setHash)
}

func TestStore_SetMessageError(t *testing.T) {
	_, url := newBlobServer(t)
	fc := newFakeClient()
	fc.uploadURL, fc.locator = url, "s3://b/k"
	fc.setErr = errors.New("boom")

	_, _, err := NewMessageService(fc).Store(context.Background(), []byte("x"), []byte("pw"))
	assert.EqualError(t, err, "boom")
}
