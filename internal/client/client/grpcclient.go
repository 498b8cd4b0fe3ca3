package client

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.DeadSwitchClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *GRPCClient) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken, c.refreshToken = access, refresh
	c.mu.Unlock()
}

// RefreshToken returns the current refresh token so the caller can persist
// the session.
func (c *GRPCClient) RefreshToken() string {
	_, r := c.tokens()
	return r
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := c.tokens()
	if method == pb.DeadSwitch_RefreshToken_FullMethodName || access == "" {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	pair, rerr := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return err
	}
	c.setTokens(pair.AccessToken, pair.RefreshToken)

	return invoker(withAccessToken(ctx, pair.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dial := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dial...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewDeadSwitchClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func call[Resp any](ctx context.Context, c *GRPCClient, f func(context.Context) (*Resp, error)) (*Resp, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := f(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// Ping returns the server's current block height.
func (c *GRPCClient) Ping(ctx context.Context) (int64, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.PingResponse, error) {
		return c.client.Ping(ctx, &pb.PingRequest{})
	})
	if err != nil {
		return 0, err
	}
	if resp.Status != "OK" {
		return 0, ErrUnavailable
	}
	return resp.Height, nil
}

func (c *GRPCClient) Register(ctx context.Context, username string, salt, verifier []byte) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.RegisterAccountResponse, error) {
		return c.client.RegisterAccount(ctx, &pb.RegisterAccountRequest{Username: username, Salt: salt, Verifier: verifier})
	})
	return err
}

func (c *GRPCClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.GetSaltResponse, error) {
		return c.client.GetSalt(ctx, &pb.GetSaltRequest{Username: username})
	})
	if err != nil {
		return nil, err
	}
	return resp.Salt, nil
}

func (c *GRPCClient) Login(ctx context.Context, username string, verifier []byte) error {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.TokenPairResponse, error) {
		return c.client.Login(ctx, &pb.LoginRequest{Username: username, VerifierCandidate: verifier})
	})
	if err != nil {
		return err
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Resume exchanges a saved refresh token for a fresh token pair.
func (c *GRPCClient) Resume(ctx context.Context, refreshToken string) error {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.TokenPairResponse, error) {
		return c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	})
	if err != nil {
		return err
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (c *GRPCClient) RegisterSwitch(ctx context.Context, interval, grace int64) (*pb.RegisterSwitchResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.RegisterSwitchResponse, error) {
		return c.client.RegisterSwitch(ctx, &pb.RegisterSwitchRequest{Interval: interval, GracePeriod: grace})
	})
}

func (c *GRPCClient) Heartbeat(ctx context.Context) (*pb.HeartbeatResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.HeartbeatResponse, error) {
		return c.client.Heartbeat(ctx, &pb.Empty{})
	})
}

func (c *GRPCClient) TryTrigger(ctx context.Context, owner string) (*pb.SwitchResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.SwitchResponse, error) {
		return c.client.TryTrigger(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) GetSwitch(ctx context.Context, owner string) (*pb.SwitchResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.SwitchResponse, error) {
		return c.client.GetSwitch(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) GetStatus(ctx context.Context, owner string) (*pb.StatusResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.StatusResponse, error) {
		return c.client.GetStatus(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) IsTriggered(ctx context.Context, owner string) (bool, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.BoolResponse, error) {
		return c.client.IsTriggered(ctx, &pb.OwnerRequest{Owner: owner})
	})
	if err != nil {
		return false, err
	}
	return resp.Value, nil
}

func (c *GRPCClient) Deposit(ctx context.Context, amount int64) (int64, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.BalanceResponse, error) {
		return c.client.Deposit(ctx, &pb.AmountRequest{Amount: amount})
	})
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *GRPCClient) Withdraw(ctx context.Context, amount int64) (int64, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.BalanceResponse, error) {
		return c.client.Withdraw(ctx, &pb.AmountRequest{Amount: amount})
	})
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *GRPCClient) GetBalance(ctx context.Context, owner string) (int64, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.BalanceResponse, error) {
		return c.client.GetBalance(ctx, &pb.OwnerRequest{Owner: owner})
	})
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *GRPCClient) SetMessage(ctx context.Context, hash, locator string) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.SetMessage(ctx, &pb.SetMessageRequest{Hash: hash, Locator: locator})
	})
	return err
}

func (c *GRPCClient) GetMessage(ctx context.Context, owner string) (*pb.MessageResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.MessageResponse, error) {
		return c.client.GetMessage(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) PresignMessageUpload(ctx context.Context) (*pb.PresignUploadResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.PresignUploadResponse, error) {
		return c.client.PresignMessageUpload(ctx, &pb.Empty{})
	})
}

func (c *GRPCClient) PresignMessageDownload(ctx context.Context, owner string) (*pb.PresignDownloadResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.PresignDownloadResponse, error) {
		return c.client.PresignMessageDownload(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) AddGuardian(ctx context.Context, guardian string) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.AddGuardian(ctx, &pb.GuardianRequest{Guardian: guardian})
	})
	return err
}

func (c *GRPCClient) RemoveGuardian(ctx context.Context, guardian string) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.RemoveGuardian(ctx, &pb.GuardianRequest{Guardian: guardian})
	})
	return err
}

func (c *GRPCClient) ExtendDeadline(ctx context.Context, owner string) (*pb.ExtendDeadlineResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.ExtendDeadlineResponse, error) {
		return c.client.ExtendDeadline(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) IsGuardian(ctx context.Context, owner, guardian string) (bool, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.BoolResponse, error) {
		return c.client.IsGuardian(ctx, &pb.GuardianQuery{Owner: owner, Guardian: guardian})
	})
	if err != nil {
		return false, err
	}
	return resp.Value, nil
}

func (c *GRPCClient) GetExtensionCount(ctx context.Context, owner, guardian string) (int, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.CountResponse, error) {
		return c.client.GetExtensionCount(ctx, &pb.GuardianQuery{Owner: owner, Guardian: guardian})
	})
	if err != nil {
		return 0, err
	}
	return int(resp.Count), nil
}

func (c *GRPCClient) ListGuardians(ctx context.Context, owner string) ([]*pb.Guardian, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.ListGuardiansResponse, error) {
		return c.client.ListGuardians(ctx, &pb.OwnerRequest{Owner: owner})
	})
	if err != nil {
		return nil, err
	}
	return resp.Guardians, nil
}

func (c *GRPCClient) SetBeneficiaries(ctx context.Context, list []*pb.Beneficiary) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.SetBeneficiaries(ctx, &pb.SetBeneficiariesRequest{Beneficiaries: list})
	})
	return err
}

func (c *GRPCClient) GetBeneficiaries(ctx context.Context, owner string) (*pb.BeneficiariesResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.BeneficiariesResponse, error) {
		return c.client.GetBeneficiaries(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) AddBeneficiary(ctx context.Context, recipient string, percentage int) (int, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.AddBeneficiaryResponse, error) {
		return c.client.AddBeneficiary(ctx, &pb.AddBeneficiaryRequest{Recipient: recipient, Percentage: int32(percentage)})
	})
	if err != nil {
		return 0, err
	}
	return int(resp.Index), nil
}

func (c *GRPCClient) RemoveBeneficiary(ctx context.Context, index int) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.RemoveBeneficiary(ctx, &pb.RemoveBeneficiaryRequest{Index: int32(index)})
	})
	return err
}

func (c *GRPCClient) ClearBeneficiaries(ctx context.Context) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.ClearBeneficiaries(ctx, &pb.Empty{})
	})
	return err
}

func (c *GRPCClient) GetBeneficiaryAt(ctx context.Context, owner string, index int) (*pb.BeneficiaryAtResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.BeneficiaryAtResponse, error) {
		return c.client.GetBeneficiaryAt(ctx, &pb.BeneficiaryAtRequest{Owner: owner, Index: int32(index)})
	})
}

func (c *GRPCClient) count(ctx context.Context, f func(context.Context, *pb.OwnerRequest, ...grpc.CallOption) (*pb.CountResponse, error), owner string) (int, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.CountResponse, error) {
		return f(ctx, &pb.OwnerRequest{Owner: owner})
	})
	if err != nil {
		return 0, err
	}
	return int(resp.Count), nil
}

func (c *GRPCClient) GetBeneficiaryCount(ctx context.Context, owner string) (int, error) {
	return c.count(ctx, c.client.GetBeneficiaryCount, owner)
}

func (c *GRPCClient) GetTotalPercentage(ctx context.Context, owner string) (int, error) {
	return c.count(ctx, c.client.GetTotalPercentage, owner)
}

func (c *GRPCClient) GetRemainingPercentage(ctx context.Context, owner string) (int, error) {
	return c.count(ctx, c.client.GetRemainingPercentage, owner)
}

func (c *GRPCClient) IsConfigurationComplete(ctx context.Context, owner string) (bool, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.BoolResponse, error) {
		return c.client.IsConfigurationComplete(ctx, &pb.OwnerRequest{Owner: owner})
	})
	if err != nil {
		return false, err
	}
	return resp.Value, nil
}

func (c *GRPCClient) GetBeneficiariesPage(ctx context.Context, owner string, page int) (*pb.BeneficiariesPageResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.BeneficiariesPageResponse, error) {
		return c.client.GetBeneficiariesPage(ctx, &pb.BeneficiariesPageRequest{Owner: owner, Page: int32(page)})
	})
}

func (c *GRPCClient) ExecuteTrigger(ctx context.Context, owner string) (*pb.DistributionResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.DistributionResponse, error) {
		return c.client.ExecuteTrigger(ctx, &pb.OwnerRequest{Owner: owner})
	})
}

func (c *GRPCClient) GetPayouts(ctx context.Context, owner string) ([]*pb.Payout, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.PayoutsResponse, error) {
		return c.client.GetPayouts(ctx, &pb.OwnerRequest{Owner: owner})
	})
	if err != nil {
		return nil, err
	}
	return resp.Payouts, nil
}

func (c *GRPCClient) TransferToken(ctx context.Context, tokenID int64, from, to string) error {
	_, err := call(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.TransferToken(ctx, &pb.TransferTokenRequest{TokenId: tokenID, From: from, To: to})
	})
	return err
}

func (c *GRPCClient) GetToken(ctx context.Context, tokenID int64) (*pb.TokenResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.TokenResponse, error) {
		return c.client.GetToken(ctx, &pb.TokenRequest{TokenId: tokenID})
	})
}

func (c *GRPCClient) GetTokenOwner(ctx context.Context, tokenID int64) (*pb.TokenOwnerResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.TokenOwnerResponse, error) {
		return c.client.GetTokenOwner(ctx, &pb.TokenRequest{TokenId: tokenID})
	})
}

func (c *GRPCClient) GetLastTokenID(ctx context.Context) (int64, error) {
	resp, err := call(ctx, c, func(ctx context.Context) (*pb.LastTokenIDResponse, error) {
		return c.client.GetLastTokenID(ctx, &pb.Empty{})
	})
	if err != nil {
		return 0, err
	}
	return resp.TokenId, nil
}

func (c *GRPCClient) GetTokenURI(ctx context.Context, tokenID int64) (*pb.TokenURIResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.TokenURIResponse, error) {
		return c.client.GetTokenURI(ctx, &pb.TokenRequest{TokenId: tokenID})
	})
}

func (c *GRPCClient) GetTokenForSwitch(ctx context.Context, owner string) (*pb.TokenResponse, error) {
	return call(ctx, c, func(ctx context.Context) (*pb.TokenResponse, error) {
		return c.client.GetTokenForSwitch(ctx, &pb.OwnerRequest{Owner: owner})
	})
}
