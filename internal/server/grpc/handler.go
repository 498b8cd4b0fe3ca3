package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK", Height: s.svc.Switches.Height()}, nil

}

func (s *GRPCServer) RegisterAccount(ctx context.Context, req *pb.RegisterAccountRequest) (*pb.RegisterAccountResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.svc.Users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RegisterAccount_FullMethodName, err)
	}

	s.logger.Info(ctx, "Registered", "username", result.UserName)
	return &pb.RegisterAccountResponse{Username: result.UserName}, nil

}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.svc.Users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetSalt_FullMethodName, err)
	}

	return &pb.GetSaltResponse{Salt: result}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPairResponse, error) {

	tokens, err := s.svc.Users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Login_FullMethodName, err)
	}

	return &pb.TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenPairResponse, error) {

	tokens, err := s.svc.Users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RefreshToken_FullMethodName, err)
	}

	return &pb.TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

// Switch registry.

func (s *GRPCServer) RegisterSwitch(ctx context.Context, req *pb.RegisterSwitchRequest) (*pb.RegisterSwitchResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RegisterSwitch_FullMethodName, err)
	}

	sw, tok, err := s.svc.Switches.Register(ctx, owner, req.Interval, req.GracePeriod)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RegisterSwitch_FullMethodName, err)
	}

	s.logger.Info(ctx, "Switch registered", "owner", owner, "token_id", tok.ID)
	return &pb.RegisterSwitchResponse{Switch: toProtoSwitch(sw), TokenId: tok.ID}, nil
}

func (s *GRPCServer) Heartbeat(ctx context.Context, req *pb.Empty) (*pb.HeartbeatResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Heartbeat_FullMethodName, err)
	}

	if _, err := s.svc.Switches.Heartbeat(ctx, owner); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Heartbeat_FullMethodName, err)
	}

	sw, err := s.svc.Switches.GetSwitch(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Heartbeat_FullMethodName, err)
	}

	return &pb.HeartbeatResponse{LastCheckIn: sw.LastCheckIn, Deadline: sw.Deadline()}, nil
}

func (s *GRPCServer) TryTrigger(ctx context.Context, req *pb.OwnerRequest) (*pb.SwitchResponse, error) {
	sw, err := s.svc.Switches.TryTrigger(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_TryTrigger_FullMethodName, err)
	}
	return &pb.SwitchResponse{Found: true, Switch: toProtoSwitch(sw)}, nil
}

func (s *GRPCServer) GetSwitch(ctx context.Context, req *pb.OwnerRequest) (*pb.SwitchResponse, error) {
	sw, err := s.svc.Switches.GetSwitch(ctx, req.Owner)
	if notFound(err) {
		return &pb.SwitchResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetSwitch_FullMethodName, err)
	}
	return &pb.SwitchResponse{Found: true, Switch: toProtoSwitch(sw)}, nil
}

func (s *GRPCServer) GetStatus(ctx context.Context, req *pb.OwnerRequest) (*pb.StatusResponse, error) {
	st, err := s.svc.Switches.Status(ctx, req.Owner)
	if notFound(err) {
		return &pb.StatusResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetStatus_FullMethodName, err)
	}
	return &pb.StatusResponse{Found: true, Active: st.Active, LastCheckIn: st.LastCheckIn}, nil
}

func (s *GRPCServer) IsTriggered(ctx context.Context, req *pb.OwnerRequest) (*pb.BoolResponse, error) {
	v, err := s.svc.Switches.IsTriggered(ctx, req.Owner)
	if err != nil && !notFound(err) {
		return nil, s.toStatus(ctx, pb.DeadSwitch_IsTriggered_FullMethodName, err)
	}
	return &pb.BoolResponse{Value: v}, nil
}
