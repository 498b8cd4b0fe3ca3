package grpc

import (
	"context"
	"path"
	"strconv"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/api"
	"github.com/dmitrijs2005/deadswitch/internal/common"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
	"github.com/dmitrijs2005/deadswitch/internal/server/auth"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const principalKey ctxKey = "principal"

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.DeadSwitch_Ping_FullMethodName:                    true,
	pb.DeadSwitch_RegisterAccount_FullMethodName:         true,
	pb.DeadSwitch_GetSalt_FullMethodName:                 true,
	pb.DeadSwitch_Login_FullMethodName:                   true,
	pb.DeadSwitch_RefreshToken_FullMethodName:            true,
	pb.DeadSwitch_GetSwitch_FullMethodName:               true,
	pb.DeadSwitch_GetStatus_FullMethodName:               true,
	pb.DeadSwitch_IsTriggered_FullMethodName:             true,
	pb.DeadSwitch_GetBalance_FullMethodName:              true,
	pb.DeadSwitch_GetMessage_FullMethodName:              true,
	pb.DeadSwitch_PresignMessageDownload_FullMethodName:  true,
	pb.DeadSwitch_IsGuardian_FullMethodName:              true,
	pb.DeadSwitch_GetExtensionCount_FullMethodName:       true,
	pb.DeadSwitch_ListGuardians_FullMethodName:           true,
	pb.DeadSwitch_GetBeneficiaries_FullMethodName:        true,
	pb.DeadSwitch_GetBeneficiaryAt_FullMethodName:        true,
	pb.DeadSwitch_GetBeneficiaryCount_FullMethodName:     true,
	pb.DeadSwitch_GetTotalPercentage_FullMethodName:      true,
	pb.DeadSwitch_GetRemainingPercentage_FullMethodName:  true,
	pb.DeadSwitch_IsConfigurationComplete_FullMethodName: true,
	pb.DeadSwitch_GetBeneficiariesPage_FullMethodName:    true,
	pb.DeadSwitch_GetPayouts_FullMethodName:              true,
	pb.DeadSwitch_GetToken_FullMethodName:                true,
	pb.DeadSwitch_GetTokenOwner_FullMethodName:           true,
	pb.DeadSwitch_GetLastTokenID_FullMethodName:          true,
	pb.DeadSwitch_GetTokenURI_FullMethodName:             true,
	pb.DeadSwitch_GetTokenForSwitch_FullMethodName:       true,
}

func isPublic(fullMethod string) bool {
	return publicMethods[fullMethod]
}

// withPrincipal stores the authenticated account name on ctx.
func withPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, principalKey, username)
}

// principal returns the authenticated caller, or ErrorUnauthorized when the
// request carried no valid access token.
func principal(ctx context.Context) (string, error) {
	u, ok := ctx.Value(principalKey).(string)
	if !ok || u == "" {
		return "", common.ErrorUnauthorized
	}
	return u, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if isPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, api.NewStatus(codes.Unauthenticated, common.CodeUnauthorized, "missing token")
	}

	username, err := auth.GetUsernameFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, api.NewStatus(codes.Unauthenticated, common.CodeUnauthorized, err.Error())
	}

	return handler(withPrincipal(ctx, username), req)
}

// metricsInterceptor counts requests by method and numeric result code.
func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	method := path.Base(info.FullMethod)
	start := time.Now()

	resp, err := handler(ctx, req)

	code := 0
	if err != nil {
		code = common.CodeInternal
		if c, ok := api.ErrorCode(err); ok {
			code = c
		}
	}
	metrics.RPCRequestDurationSeconds.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.RPCRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()

	return resp, err
}
