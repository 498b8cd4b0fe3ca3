package client

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

// Client is the set of DeadSwitch calls the CLI makes. Every method applies
// the configured request timeout and returns mapped errors.
type Client interface {
	Close() error
	Ping(ctx context.Context) (int64, error)

	Register(ctx context.Context, username string, salt, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) error
	Resume(ctx context.Context, refreshToken string) error
	RefreshToken() string

	RegisterSwitch(ctx context.Context, interval, grace int64) (*pb.RegisterSwitchResponse, error)
	Heartbeat(ctx context.Context) (*pb.HeartbeatResponse, error)
	TryTrigger(ctx context.Context, owner string) (*pb.SwitchResponse, error)
	GetSwitch(ctx context.Context, owner string) (*pb.SwitchResponse, error)
	GetStatus(ctx context.Context, owner string) (*pb.StatusResponse, error)
	IsTriggered(ctx context.Context, owner string) (bool, error)

	Deposit(ctx context.Context, amount int64) (int64, error)
	Withdraw(ctx context.Context, amount int64) (int64, error)
	GetBalance(ctx context.Context, owner string) (int64, error)
	SetMessage(ctx context.Context, hash, locator string) error
	GetMessage(ctx context.Context, owner string) (*pb.MessageResponse, error)
	PresignMessageUpload(ctx context.Context) (*pb.PresignUploadResponse, error)
	PresignMessageDownload(ctx context.Context, owner string) (*pb.PresignDownloadResponse, error)

	AddGuardian(ctx context.Context, guardian string) error
	RemoveGuardian(ctx context.Context, guardian string) error
	ExtendDeadline(ctx context.Context, owner string) (*pb.ExtendDeadlineResponse, error)
	IsGuardian(ctx context.Context, owner, guardian string) (bool, error)
	GetExtensionCount(ctx context.Context, owner, guardian string) (int, error)
	ListGuardians(ctx context.Context, owner string) ([]*pb.Guardian, error)

	SetBeneficiaries(ctx context.Context, list []*pb.Beneficiary) error
	GetBeneficiaries(ctx context.Context, owner string) (*pb.BeneficiariesResponse, error)
	AddBeneficiary(ctx context.Context, recipient string, percentage int) (int, error)
	RemoveBeneficiary(ctx context.Context, index int) error
	ClearBeneficiaries(ctx context.Context) error
	GetBeneficiaryAt(ctx context.Context, owner string, index int) (*pb.BeneficiaryAtResponse, error)
	GetBeneficiaryCount(ctx context.Context, owner string) (int, error)
	GetTotalPercentage(ctx context.Context, owner string) (int, error)
	GetRemainingPercentage(ctx context.Context, owner string) (int, error)
	IsConfigurationComplete(ctx context.Context, owner string) (bool, error)
	GetBeneficiariesPage(ctx context.Context, owner string, page int) (*pb.BeneficiariesPageResponse, error)

	ExecuteTrigger(ctx context.Context, owner string) (*pb.DistributionResponse, error)
	GetPayouts(ctx context.Context, owner string) ([]*pb.Payout, error)

	TransferToken(ctx context.Context, tokenID int64, from, to string) error
	GetToken(ctx context.Context, tokenID int64) (*pb.TokenResponse, error)
	GetTokenOwner(ctx context.Context, tokenID int64) (*pb.TokenOwnerResponse, error)
	GetLastTokenID(ctx context.Context) (int64, error)
	GetTokenURI(ctx context.Context, tokenID int64) (*pb.TokenURIResponse, error)
	GetTokenForSwitch(ctx context.Context, owner string) (*pb.TokenResponse, error)
}
