package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/deadswitch/internal/logging"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
}

type SwitchService interface {
	Height() int64
	Register(ctx context.Context, owner string, interval, gracePeriod int64) (*models.Switch, *models.Token, error)
	Heartbeat(ctx context.Context, owner string) (int64, error)
	Status(ctx context.Context, owner string) (*models.SwitchStatus, error)
	GetSwitch(ctx context.Context, owner string) (*models.Switch, error)
	IsTriggered(ctx context.Context, owner string) (bool, error)
	TryTrigger(ctx context.Context, owner string) (*models.Switch, error)
}

type VaultService interface {
	Deposit(ctx context.Context, owner string, amount int64) (int64, error)
	Withdraw(ctx context.Context, owner string, amount int64) (int64, error)
	GetBalance(ctx context.Context, owner string) (int64, error)
	SetMessage(ctx context.Context, owner string, msg models.Message) error
	GetMessage(ctx context.Context, owner string) (*models.Message, error)
	PresignMessageUpload(ctx context.Context, owner string) (*models.MessageUpload, error)
	PresignMessageDownload(ctx context.Context, owner string) (string, error)
}

type GuardianService interface {
	AddGuardian(ctx context.Context, owner, guardian string) error
	RemoveGuardian(ctx context.Context, owner, guardian string) error
	ExtendDeadline(ctx context.Context, owner, caller string) (*models.Switch, int, error)
	IsGuardian(ctx context.Context, owner, guardian string) (bool, error)
	GetExtensionCount(ctx context.Context, owner, guardian string) (int, error)
	ListGuardians(ctx context.Context, owner string) ([]models.Guardian, error)
}

type BeneficiaryService interface {
	SetBeneficiaries(ctx context.Context, owner string, list []models.Beneficiary) error
	GetBeneficiaries(ctx context.Context, owner string) ([]models.Beneficiary, error)
	AddBeneficiary(ctx context.Context, owner, recipient string, percentage int) (int, error)
	RemoveBeneficiary(ctx context.Context, owner string, index int) error
	ClearBeneficiaries(ctx context.Context, owner string) error
	GetBeneficiaryAt(ctx context.Context, owner string, index int) (*models.Beneficiary, error)
	GetBeneficiaryCount(ctx context.Context, owner string) (int, error)
	GetTotalPercentage(ctx context.Context, owner string) (int, error)
	GetRemainingPercentage(ctx context.Context, owner string) (int, error)
	IsConfigurationComplete(ctx context.Context, owner string) (bool, error)
	GetBeneficiariesPage(ctx context.Context, owner string, page int) (*models.BeneficiaryPage, error)
}

type TriggerService interface {
	ExecuteTrigger(ctx context.Context, owner string) (*models.Distribution, error)
	GetPayouts(ctx context.Context, owner string) ([]models.Payout, error)
}

type TokenService interface {
	Transfer(ctx context.Context, id int64, caller, from, to string) error
	GetToken(ctx context.Context, id int64) (*models.Token, error)
	GetOwner(ctx context.Context, id int64) (string, error)
	GetLastTokenID(ctx context.Context) (int64, error)
	GetTokenURI(ctx context.Context, id int64) (string, error)
	GetTokenForSwitch(ctx context.Context, owner string) (*models.Token, error)
}

// Services bundles the domain services the gRPC front end dispatches to.
type Services struct {
	Users         UserService
	Switches      SwitchService
	Vaults        VaultService
	Guardians     GuardianService
	Beneficiaries BeneficiaryService
	Triggers      TriggerService
	Tokens        TokenService
}

type GRPCServer struct {
	pb.UnimplementedDeadSwitchServer
	address   string
	svc       Services
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

var _ pb.DeadSwitchServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		svc:       svc,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))

	pb.RegisterDeadSwitchServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.DeadSwitch_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
