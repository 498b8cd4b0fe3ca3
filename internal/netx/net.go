// Package netx moves sealed message blobs to and from presigned object
// storage URLs.
package netx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MaxObjectSize caps how much of a presigned object is read back.
const MaxObjectSize = 16 << 20

// errBodyLimit bounds the storage error text carried in a StatusError.
const errBodyLimit = 4 << 10

// Client is the HTTP client used for presigned transfers.
var Client = &http.Client{Timeout: time.Minute}

// ErrTooLarge is returned when a download exceeds MaxObjectSize.
var ErrTooLarge = errors.New("object too large")

// StatusError is a non-2xx answer from object storage. An expired or
// tampered presigned URL shows up as 403.
type StatusError struct {
	Method string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: %d %s", e.Method, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Put uploads data to a presigned PUT URL.
func Put(ctx context.Context, url string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Get downloads a presigned GET URL.
func Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.ContentLength > MaxObjectSize {
		return nil, ErrTooLarge
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxObjectSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxObjectSize {
		return nil, ErrTooLarge
	}
	return body, nil
}

// do sends req and turns non-2xx answers into a *StatusError.
func do(req *http.Request) (*http.Response, error) {
	resp, err := Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 == 2 {
		return resp, nil
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
	return nil, &StatusError{Method: req.Method, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}
