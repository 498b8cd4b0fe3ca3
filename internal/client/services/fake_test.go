package services

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/client/client"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

// fakeClient overrides the calls the services make; the embedded nil
// interface panics on anything else.
type fakeClient struct {
	client.Client

	registered   map[string][2][]byte
	refreshToken string
	loginErr     error
	resumeErr    error
	resumedWith  string

	uploadURL  string
	locator    string
	downloadOK bool
	msg        *pb.MessageResponse
	setHash    string
	setLocator string
	setErr     error
}

func newFakeClient() *fakeClient {
	return &fakeClient{registered: map[string][2][]byte{}}
}

func (f *fakeClient) Register(ctx context.Context, username string, salt, verifier []byte) error {
	f.registered[username] = [2][]byte{salt, verifier}
	return nil
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	r, ok := f.registered[username]
	if !ok {
		return nil, &client.RemoteError{Code: 404, Message: "not found"}
	}
	return r[0], nil
}

func (f *fakeClient) Login(ctx context.Context, username string, verifier []byte) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	if string(f.registered[username][1]) != string(verifier) {
		return client.ErrUnauthorized
	}
	f.refreshToken = "refresh-" + username
	return nil
}

func (f *fakeClient) Resume(ctx context.Context, token string) error {
	f.resumedWith = token
	if f.resumeErr != nil {
		return f.resumeErr
	}
	f.refreshToken = token + "+"
	return nil
}

func (f *fakeClient) RefreshToken() string { return f.refreshToken }

func (f *fakeClient) PresignMessageUpload(ctx context.Context) (*pb.PresignUploadResponse, error) {
	return &pb.PresignUploadResponse{Locator: f.locator, Url: f.uploadURL}, nil
}

func (f *fakeClient) SetMessage(ctx context.Context, hash, locator string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setHash, f.setLocator = hash, locator
	f.msg = &pb.MessageResponse{Found: true, Hash: hash, Locator: locator}
	return nil
}

func (f *fakeClient) GetMessage(ctx context.Context, owner string) (*pb.MessageResponse, error) {
	if f.msg == nil {
		return &pb.MessageResponse{}, nil
	}
	return f.msg, nil
}

func (f *fakeClient) PresignMessageDownload(ctx context.Context, owner string) (*pb.PresignDownloadResponse, error) {
	if !f.downloadOK {
		return &pb.PresignDownloadResponse{}, nil
	}
	return &pb.PresignDownloadResponse{Found: true, Url: f.uploadURL}, nil
}
