package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

// Trigger orchestration.

func (s *GRPCServer) ExecuteTrigger(ctx context.Context, req *pb.OwnerRequest) (*pb.DistributionResponse, error) {
	caller, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ExecuteTrigger_FullMethodName, err)
	}

	d, err := s.svc.Triggers.ExecuteTrigger(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ExecuteTrigger_FullMethodName, err)
	}

	s.logger.Info(ctx, "Trigger executed", "owner", req.Owner, "caller", caller, "total", d.Total)
	return &pb.DistributionResponse{
		Owner:   d.Owner,
		Height:  d.Height,
		Total:   d.Total,
		Payouts: toProtoPayouts(d.Payouts),
	}, nil
}

func (s *GRPCServer) GetPayouts(ctx context.Context, req *pb.OwnerRequest) (*pb.PayoutsResponse, error) {
	list, err := s.svc.Triggers.GetPayouts(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetPayouts_FullMethodName, err)
	}
	return &pb.PayoutsResponse{Payouts: toProtoPayouts(list)}, nil
}

// Ownership tokens.

func (s *GRPCServer) TransferToken(ctx context.Context, req *pb.TransferTokenRequest) (*pb.Empty, error) {
	caller, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_TransferToken_FullMethodName, err)
	}
	if err := s.svc.Tokens.Transfer(ctx, req.TokenId, caller, req.From, req.To); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_TransferToken_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetToken(ctx context.Context, req *pb.TokenRequest) (*pb.TokenResponse, error) {
	t, err := s.svc.Tokens.GetToken(ctx, req.TokenId)
	if notFound(err) {
		return &pb.TokenResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetToken_FullMethodName, err)
	}
	return &pb.TokenResponse{Found: true, Token: toProtoToken(t)}, nil
}

func (s *GRPCServer) GetTokenOwner(ctx context.Context, req *pb.TokenRequest) (*pb.TokenOwnerResponse, error) {
	holder, err := s.svc.Tokens.GetOwner(ctx, req.TokenId)
	if notFound(err) {
		return &pb.TokenOwnerResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetTokenOwner_FullMethodName, err)
	}
	return &pb.TokenOwnerResponse{Found: true, Holder: holder}, nil
}

func (s *GRPCServer) GetLastTokenID(ctx context.Context, req *pb.Empty) (*pb.LastTokenIDResponse, error) {
	id, err := s.svc.Tokens.GetLastTokenID(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetLastTokenID_FullMethodName, err)
	}
	return &pb.LastTokenIDResponse{TokenId: id}, nil
}

func (s *GRPCServer) GetTokenURI(ctx context.Context, req *pb.TokenRequest) (*pb.TokenURIResponse, error) {
	uri, err := s.svc.Tokens.GetTokenURI(ctx, req.TokenId)
	if notFound(err) {
		return &pb.TokenURIResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetTokenURI_FullMethodName, err)
	}
	return &pb.TokenURIResponse{Found: true, Uri: uri}, nil
}

func (s *GRPCServer) GetTokenForSwitch(ctx context.Context, req *pb.OwnerRequest) (*pb.TokenResponse, error) {
	t, err := s.svc.Tokens.GetTokenForSwitch(ctx, req.Owner)
	if notFound(err) {
		return &pb.TokenResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetTokenForSwitch_FullMethodName, err)
	}
	return &pb.TokenResponse{Found: true, Token: toProtoToken(t)}, nil
}
