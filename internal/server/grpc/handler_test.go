package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/deadswitch/internal/api"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/logging"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	refreshResp *services.TokenPair
	refreshErr  error

	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error
}

func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUser) Register(ctx context.Context, username string, salt []byte, verifier []byte) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.saltResp, f.saltErr
}
func (f *fakeUser) Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

type fakeSwitch struct {
	height int64
	sw     *models.Switch
	tok    *models.Token
	err    error

	gotOwner string
}

func (f *fakeSwitch) Height() int64 { return f.height }
func (f *fakeSwitch) Register(ctx context.Context, owner string, interval, grace int64) (*models.Switch, *models.Token, error) {
	f.gotOwner = owner
	return f.sw, f.tok, f.err
}
func (f *fakeSwitch) Heartbeat(ctx context.Context, owner string) (int64, error) {
	f.gotOwner = owner
	if f.err != nil {
		return 0, f.err
	}
	return f.sw.LastCheckIn, nil
}
func (f *fakeSwitch) Status(ctx context.Context, owner string) (*models.SwitchStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	st := f.sw.Status()
	return &st, nil
}
func (f *fakeSwitch) GetSwitch(ctx context.Context, owner string) (*models.Switch, error) {
	return f.sw, f.err
}
func (f *fakeSwitch) IsTriggered(ctx context.Context, owner string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.sw.Triggered, nil
}
func (f *fakeSwitch) TryTrigger(ctx context.Context, owner string) (*models.Switch, error) {
	return f.sw, f.err
}

type fakeBeneficiaries struct {
	BeneficiaryService
	list []models.Beneficiary
	err  error

	gotList []models.Beneficiary
}

func (f *fakeBeneficiaries) SetBeneficiaries(ctx context.Context, owner string, list []models.Beneficiary) error {
	f.gotList = list
	return f.err
}
func (f *fakeBeneficiaries) GetBeneficiaries(ctx context.Context, owner string) ([]models.Beneficiary, error) {
	return f.list, f.err
}
func (f *fakeBeneficiaries) GetBeneficiaryAt(ctx context.Context, owner string, index int) (*models.Beneficiary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.list[index], nil
}

type fakeTokens struct {
	TokenService
	tok *models.Token
	err error

	gotCaller string
}

func (f *fakeTokens) Transfer(ctx context.Context, id int64, caller, from, to string) error {
	f.gotCaller = caller
	return f.err
}
func (f *fakeTokens) GetToken(ctx context.Context, id int64) (*models.Token, error) {
	return f.tok, f.err
}

// ---- helpers ----

func newServer(svc Services) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NewNop(), svc, "k")
}

func authed(user string) context.Context {
	return withPrincipal(context.Background(), user)
}

func wantCode(t *testing.T, err error, grpcCode codes.Code, code int) {
	t.Helper()
	if status.Code(err) != grpcCode {
		t.Fatalf("want %v, got %v (err=%v)", grpcCode, status.Code(err), err)
	}
	got, ok := api.ErrorCode(err)
	if !ok || got != code {
		t.Fatalf("want numeric code %d, got %d (ok=%v)", code, got, ok)
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(Services{Switches: &fakeSwitch{height: 77}})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" || resp.Height != 77 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRefreshToken_OK(t *testing.T) {
	u := &fakeUser{
		refreshResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}
	s := newServer(Services{Users: u})
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.AccessToken != "a" || resp.RefreshToken != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRefreshToken_InternalHidesCause(t *testing.T) {
	u := &fakeUser{refreshErr: errors.New("oops: connection string leaked")}
	s := newServer(Services{Users: u})
	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	wantCode(t, err, codes.Internal, common.CodeInternal)
	if st, _ := status.FromError(err); st.Message() != common.Message(common.CodeInternal) {
		t.Fatalf("internal cause leaked: %q", st.Message())
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	u := &fakeUser{refreshErr: common.ErrRefreshTokenExpired}
	s := newServer(Services{Users: u})
	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	wantCode(t, err, codes.Unauthenticated, common.CodeUnauthorized)
}

func TestRegisterAccount_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.User{ID: "42", UserName: "alice"}}
	s := newServer(Services{Users: u})
	resp, err := s.RegisterAccount(context.Background(), &pb.RegisterAccountRequest{
		Username: "alice", Salt: []byte("s"), Verifier: []byte("v"),
	})
	if err != nil {
		t.Fatalf("RegisterAccount error: %v", err)
	}
	if resp.Username != "alice" {
		t.Fatalf("unexpected username %q", resp.Username)
	}
}

func TestRegisterAccount_AlreadyExists(t *testing.T) {
	u := &fakeUser{regErr: fmt.Errorf("error creating user: %w", common.ErrorAlreadyExists)}
	s := newServer(Services{Users: u})
	_, err := s.RegisterAccount(context.Background(), &pb.RegisterAccountRequest{Username: "alice"})
	wantCode(t, err, codes.AlreadyExists, common.CodeAlreadyExists)
}

func TestGetSalt_NotFound(t *testing.T) {
	s := newServer(Services{Users: &fakeUser{saltErr: common.ErrorNotFound}})
	_, err := s.GetSalt(context.Background(), &pb.GetSaltRequest{Username: "ghost"})
	wantCode(t, err, codes.NotFound, common.CodeNotFound)
}

func TestLogin_Unauthorized(t *testing.T) {
	s := newServer(Services{Users: &fakeUser{loginErr: common.ErrorUnauthorized}})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u"})
	wantCode(t, err, codes.Unauthenticated, common.CodeUnauthorized)
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{loginResp: &services.TokenPair{AccessToken: "A", RefreshToken: "R"}}
	s := newServer(Services{Users: u})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken != "A" || resp.RefreshToken != "R" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRegisterSwitch_UsesPrincipal(t *testing.T) {
	sw := &fakeSwitch{
		sw:  &models.Switch{Owner: "alice", Interval: 144, GracePeriod: 10, LastCheckIn: 1000},
		tok: &models.Token{ID: 3, Holder: "alice", SwitchOwner: "alice"},
	}
	s := newServer(Services{Switches: sw})

	resp, err := s.RegisterSwitch(authed("alice"), &pb.RegisterSwitchRequest{Interval: 144, GracePeriod: 10})
	if err != nil {
		t.Fatalf("RegisterSwitch error: %v", err)
	}
	if sw.gotOwner != "alice" {
		t.Fatalf("service called for %q", sw.gotOwner)
	}
	if resp.GetTokenId() != 3 || resp.Switch.Deadline != 1154 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterSwitch_NoPrincipal(t *testing.T) {
	s := newServer(Services{Switches: &fakeSwitch{}})
	_, err := s.RegisterSwitch(context.Background(), &pb.RegisterSwitchRequest{})
	wantCode(t, err, codes.Unauthenticated, common.CodeUnauthorized)
}

func TestHeartbeat_Triggered(t *testing.T) {
	s := newServer(Services{Switches: &fakeSwitch{err: common.ErrorTriggered}})
	_, err := s.Heartbeat(authed("alice"), &pb.Empty{})
	wantCode(t, err, codes.FailedPrecondition, common.CodeForbidden)
}

func TestTryTrigger_NotReady(t *testing.T) {
	s := newServer(Services{Switches: &fakeSwitch{err: common.ErrorNotReady}})
	_, err := s.TryTrigger(authed("bob"), &pb.OwnerRequest{Owner: "alice"})
	wantCode(t, err, codes.FailedPrecondition, common.CodeForbidden)
}

func TestReads_NotFoundIsNotAnError(t *testing.T) {
	s := newServer(Services{
		Switches:      &fakeSwitch{err: common.ErrorNotFound},
		Beneficiaries: &fakeBeneficiaries{err: common.ErrorNotFound},
		Tokens:        &fakeTokens{err: common.ErrorNotFound},
	})
	ctx := context.Background()

	sw, err := s.GetSwitch(ctx, &pb.OwnerRequest{Owner: "ghost"})
	if err != nil || sw.Found {
		t.Fatalf("GetSwitch: %+v, %v", sw, err)
	}
	st, err := s.GetStatus(ctx, &pb.OwnerRequest{Owner: "ghost"})
	if err != nil || st.Found {
		t.Fatalf("GetStatus: %+v, %v", st, err)
	}
	tr, err := s.IsTriggered(ctx, &pb.OwnerRequest{Owner: "ghost"})
	if err != nil || tr.Value {
		t.Fatalf("IsTriggered: %+v, %v", tr, err)
	}
	bl, err := s.GetBeneficiaries(ctx, &pb.OwnerRequest{Owner: "ghost"})
	if err != nil || bl.Found || bl.Beneficiaries == nil {
		t.Fatalf("GetBeneficiaries: %+v, %v", bl, err)
	}
	at, err := s.GetBeneficiaryAt(ctx, &pb.BeneficiaryAtRequest{Owner: "ghost", Index: 5})
	if err != nil || at.Found {
		t.Fatalf("GetBeneficiaryAt: %+v, %v", at, err)
	}
	tok, err := s.GetToken(ctx, &pb.TokenRequest{TokenId: 9})
	if err != nil || tok.Found {
		t.Fatalf("GetToken: %+v, %v", tok, err)
	}
}

func TestSetBeneficiaries_Converts(t *testing.T) {
	b := &fakeBeneficiaries{}
	s := newServer(Services{Beneficiaries: b})

	_, err := s.SetBeneficiaries(authed("alice"), &pb.SetBeneficiariesRequest{
		Beneficiaries: []*pb.Beneficiary{{Recipient: "bob", Percentage: 60}, {Recipient: "carol", Percentage: 40}},
	})
	if err != nil {
		t.Fatalf("SetBeneficiaries error: %v", err)
	}
	want := []models.Beneficiary{{Recipient: "bob", Percentage: 60}, {Recipient: "carol", Percentage: 40}}
	if len(b.gotList) != 2 || b.gotList[0] != want[0] || b.gotList[1] != want[1] {
		t.Fatalf("unexpected list: %+v", b.gotList)
	}
}

func TestSetBeneficiaries_Frozen(t *testing.T) {
	s := newServer(Services{Beneficiaries: &fakeBeneficiaries{err: common.ErrorFrozen}})
	_, err := s.SetBeneficiaries(authed("alice"), &pb.SetBeneficiariesRequest{})
	wantCode(t, err, codes.FailedPrecondition, common.CodeAlreadyTriggered)
}

func TestTransferToken_NotHolder(t *testing.T) {
	tk := &fakeTokens{err: common.ErrorNotHolder}
	s := newServer(Services{Tokens: tk})
	_, err := s.TransferToken(authed("mallory"), &pb.TransferTokenRequest{TokenId: 1, From: "alice", To: "mallory"})
	wantCode(t, err, codes.PermissionDenied, common.CodeForbidden)
	if tk.gotCaller != "mallory" {
		t.Fatalf("caller not forwarded: %q", tk.gotCaller)
	}
}

func TestGetToken_OK(t *testing.T) {
	s := newServer(Services{Tokens: &fakeTokens{tok: &models.Token{ID: 4, Holder: "bob", SwitchOwner: "alice"}}})
	resp, err := s.GetToken(context.Background(), &pb.TokenRequest{TokenId: 4})
	if err != nil {
		t.Fatalf("GetToken error: %v", err)
	}
	if !resp.Found || resp.Token.GetUri() != "https://deadswitch.xyz/nft/4" || resp.Token.Holder != "bob" {
		t.Fatalf("unexpected token: %+v", resp.Token)
	}
}
