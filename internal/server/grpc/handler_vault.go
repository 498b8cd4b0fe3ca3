package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

func (s *GRPCServer) Deposit(ctx context.Context, req *pb.AmountRequest) (*pb.BalanceResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Deposit_FullMethodName, err)
	}
	balance, err := s.svc.Vaults.Deposit(ctx, owner, req.Amount)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Deposit_FullMethodName, err)
	}
	return &pb.BalanceResponse{Balance: balance}, nil
}

func (s *GRPCServer) Withdraw(ctx context.Context, req *pb.AmountRequest) (*pb.BalanceResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Withdraw_FullMethodName, err)
	}
	balance, err := s.svc.Vaults.Withdraw(ctx, owner, req.Amount)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_Withdraw_FullMethodName, err)
	}
	return &pb.BalanceResponse{Balance: balance}, nil
}

func (s *GRPCServer) GetBalance(ctx context.Context, req *pb.OwnerRequest) (*pb.BalanceResponse, error) {
	balance, err := s.svc.Vaults.GetBalance(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetBalance_FullMethodName, err)
	}
	return &pb.BalanceResponse{Balance: balance}, nil
}

func (s *GRPCServer) SetMessage(ctx context.Context, req *pb.SetMessageRequest) (*pb.Empty, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_SetMessage_FullMethodName, err)
	}
	if err := s.svc.Vaults.SetMessage(ctx, owner, models.Message{Hash: req.Hash, Locator: req.Locator}); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_SetMessage_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetMessage(ctx context.Context, req *pb.OwnerRequest) (*pb.MessageResponse, error) {
	msg, err := s.svc.Vaults.GetMessage(ctx, req.Owner)
	if notFound(err) {
		return &pb.MessageResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetMessage_FullMethodName, err)
	}
	return &pb.MessageResponse{Found: true, Hash: msg.Hash, Locator: msg.Locator}, nil
}

func (s *GRPCServer) PresignMessageUpload(ctx context.Context, req *pb.Empty) (*pb.PresignUploadResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_PresignMessageUpload_FullMethodName, err)
	}
	up, err := s.svc.Vaults.PresignMessageUpload(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_PresignMessageUpload_FullMethodName, err)
	}
	return &pb.PresignUploadResponse{Locator: up.Locator, Url: up.URL}, nil
}

func (s *GRPCServer) PresignMessageDownload(ctx context.Context, req *pb.OwnerRequest) (*pb.PresignDownloadResponse, error) {
	url, err := s.svc.Vaults.PresignMessageDownload(ctx, req.Owner)
	if notFound(err) {
		return &pb.PresignDownloadResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_PresignMessageDownload_FullMethodName, err)
	}
	return &pb.PresignDownloadResponse{Found: true, Url: url}, nil
}
