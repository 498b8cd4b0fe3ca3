package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/deadswitch/internal/api"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

// fakeServer implements the handful of RPCs these tests call; anything else
// answers Unimplemented.
type fakeServer struct {
	pb.UnimplementedDeadSwitchServer

	mu          sync.Mutex
	validToken  string
	refreshes   int
	lastToken   string
	depositErr  error
	depositWait time.Duration
	pageReq     *pb.BeneficiariesPageRequest
}

func tokenFrom(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *fakeServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK", Height: 42}, nil
}

func (f *fakeServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	if req.Username != "alice" {
		return nil, api.NewStatus(codes.NotFound, common.CodeNotFound, "not found")
	}
	return &pb.GetSaltResponse{Salt: []byte("salt")}, nil
}

func (f *fakeServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPairResponse, error) {
	if string(req.VerifierCandidate) != "good" {
		return nil, api.NewStatus(codes.Unauthenticated, common.CodeUnauthorized, "unauthorized")
	}
	return &pb.TokenPairResponse{AccessToken: "old", RefreshToken: "r1"}, nil
}

func (f *fakeServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenPairResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.RefreshToken != "r1" {
		return nil, api.NewStatus(codes.Unauthenticated, common.CodeUnauthorized, common.ErrRefreshTokenExpired.Error())
	}
	f.refreshes++
	f.validToken = "new"
	return &pb.TokenPairResponse{AccessToken: "new", RefreshToken: "r2"}, nil
}

func (f *fakeServer) Deposit(ctx context.Context, req *pb.AmountRequest) (*pb.BalanceResponse, error) {
	f.mu.Lock()
	valid, wait, derr := f.validToken, f.depositWait, f.depositErr
	f.lastToken = tokenFrom(ctx)
	got := f.lastToken
	f.mu.Unlock()

	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if derr != nil {
		return nil, derr
	}
	if got != valid {
		return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}
	return &pb.BalanceResponse{Balance: req.Amount}, nil
}

func (f *fakeServer) GetBeneficiariesPage(ctx context.Context, req *pb.BeneficiariesPageRequest) (*pb.BeneficiariesPageResponse, error) {
	f.mu.Lock()
	f.pageReq = req
	f.mu.Unlock()
	return &pb.BeneficiariesPageResponse{Page: req.Page, TotalCount: 1, Beneficiaries: []*pb.Beneficiary{{Recipient: "bob", Percentage: 100}}}, nil
}

func (f *fakeServer) GetBeneficiaryCount(ctx context.Context, req *pb.OwnerRequest) (*pb.CountResponse, error) {
	return &pb.CountResponse{Count: 3}, nil
}

func newTestClient(t *testing.T, f *fakeServer, timeout time.Duration) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterDeadSwitchServer(srv, f)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", timeout,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPing(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, time.Second)

	h, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), h)
}

func TestLogin_StoresTokens(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, time.Second)

	require.NoError(t, c.Login(context.Background(), "alice", []byte("good")))
	assert.Equal(t, "r1", c.RefreshToken())
}

func TestLogin_BadVerifier(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, time.Second)

	err := c.Login(context.Background(), "alice", []byte("bad"))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.RefreshToken())
}

func TestGetSalt_NotFoundCarriesCode(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, time.Second)

	_, err := c.GetSalt(context.Background(), "nobody")
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, common.CodeNotFound, code)
}

func TestDeposit_SendsAccessToken(t *testing.T) {
	f := &fakeServer{validToken: "old"}
	c := newTestClient(t, f, time.Second)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "alice", []byte("good")))

	bal, err := c.Deposit(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), bal)
	assert.Equal(t, "old", f.lastToken)
	assert.Zero(t, f.refreshes)
}

func TestDeposit_RefreshesExpiredToken(t *testing.T) {
	f := &fakeServer{validToken: "something-else"}
	c := newTestClient(t, f, time.Second)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "alice", []byte("good")))

	bal, err := c.Deposit(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), bal)
	assert.Equal(t, 1, f.refreshes)
	assert.Equal(t, "new", f.lastToken)
	assert.Equal(t, "r2", c.RefreshToken())
}

func TestDeposit_RefreshFailureReturnsOriginalError(t *testing.T) {
	f := &fakeServer{validToken: "x"}
	c := newTestClient(t, f, time.Second)
	c.setTokens("old", "bogus")

	_, err := c.Deposit(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, f.refreshes)
}

func TestResume(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Resume(ctx, "r1"))
	assert.Equal(t, "r2", c.RefreshToken())

	bal, err := c.Deposit(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bal)
}

func TestRemoteErrorsKeepNumericCode(t *testing.T) {
	f := &fakeServer{validToken: "old", depositErr: api.NewStatus(codes.FailedPrecondition, common.CodeAlreadyTriggered, "frozen")}
	c := newTestClient(t, f, time.Second)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "alice", []byte("good")))

	_, err := c.Deposit(ctx, 1)
	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, common.CodeAlreadyTriggered, re.Code)
	assert.Equal(t, "error 410: frozen", re.Error())
}

func TestUnavailableMapping(t *testing.T) {
	f := &fakeServer{validToken: "old", depositErr: status.Error(codes.Unavailable, "down")}
	c := newTestClient(t, f, time.Second)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "alice", []byte("good")))

	_, err := c.Deposit(ctx, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRequestTimeout(t *testing.T) {
	f := &fakeServer{validToken: "old", depositWait: time.Second}
	c := newTestClient(t, f, 50*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "alice", []byte("good")))

	_, err := c.Deposit(ctx, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPageAndCountPassThrough(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, time.Second)
	ctx := context.Background()

	page, err := c.GetBeneficiariesPage(ctx, "alice", 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), page.GetPage())
	f.mu.Lock()
	got := f.pageReq
	f.mu.Unlock()
	assert.True(t, proto.Equal(&pb.BeneficiariesPageRequest{Owner: "alice", Page: 2}, got), "request: %v", got)

	n, err := c.GetBeneficiaryCount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, mapError(plain))

	err := mapError(status.Error(codes.Internal, "no details"))
	_, ok := CodeOf(err)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "rpc error")
}
