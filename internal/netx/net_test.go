package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut(t *testing.T) {
	var method, contentType, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, contentType = r.Method, r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, Put(context.Background(), srv.URL+"/messages/alice?X-Amz-Signature=abc", []byte("sealed")))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "application/octet-stream", contentType)
	assert.Equal(t, "sealed", body)
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("sealed-bytes"))
	}))
	defer srv.Close()

	got, err := Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed-bytes"), got)
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("<Error>SignatureDoesNotMatch</Error>\n"))
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.URL)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Equal(t, "GET: 403 Forbidden: <Error>SignatureDoesNotMatch</Error>", err.Error())

	err = Put(context.Background(), srv.URL, []byte("x"))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.MethodPut, se.Method)
}

func TestGet_TooLarge(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "declared length",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "99999999")
				w.WriteHeader(http.StatusOK)
			},
		},
		{
			name: "streamed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Transfer-Encoding", "chunked")
				_, _ = io.WriteString(w, strings.Repeat("x", MaxObjectSize+10))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := Get(context.Background(), srv.URL)
			assert.ErrorIs(t, err, ErrTooLarge)
		})
	}
}

func TestRequestErrors(t *testing.T) {
	assert.Error(t, Put(context.Background(), "://bad", nil))

	_, err := Get(context.Background(), "://bad")
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Put(ctx, srv.URL, []byte("x")), context.Canceled)
}
