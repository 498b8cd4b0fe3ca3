package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

func (s *GRPCServer) SetBeneficiaries(ctx context.Context, req *pb.SetBeneficiariesRequest) (*pb.Empty, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_SetBeneficiaries_FullMethodName, err)
	}
	if err := s.svc.Beneficiaries.SetBeneficiaries(ctx, owner, fromProtoBeneficiaries(req.Beneficiaries)); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_SetBeneficiaries_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetBeneficiaries(ctx context.Context, req *pb.OwnerRequest) (*pb.BeneficiariesResponse, error) {
	list, err := s.svc.Beneficiaries.GetBeneficiaries(ctx, req.Owner)
	if notFound(err) {
		return &pb.BeneficiariesResponse{Beneficiaries: []*pb.Beneficiary{}}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetBeneficiaries_FullMethodName, err)
	}
	return &pb.BeneficiariesResponse{Found: true, Beneficiaries: toProtoBeneficiaries(list)}, nil
}

func (s *GRPCServer) AddBeneficiary(ctx context.Context, req *pb.AddBeneficiaryRequest) (*pb.AddBeneficiaryResponse, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_AddBeneficiary_FullMethodName, err)
	}
	idx, err := s.svc.Beneficiaries.AddBeneficiary(ctx, owner, req.Recipient, int(req.Percentage))
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_AddBeneficiary_FullMethodName, err)
	}
	return &pb.AddBeneficiaryResponse{Index: int32(idx)}, nil
}

func (s *GRPCServer) RemoveBeneficiary(ctx context.Context, req *pb.RemoveBeneficiaryRequest) (*pb.Empty, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RemoveBeneficiary_FullMethodName, err)
	}
	if err := s.svc.Beneficiaries.RemoveBeneficiary(ctx, owner, int(req.Index)); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RemoveBeneficiary_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ClearBeneficiaries(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ClearBeneficiaries_FullMethodName, err)
	}
	if err := s.svc.Beneficiaries.ClearBeneficiaries(ctx, owner); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ClearBeneficiaries_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetBeneficiaryAt(ctx context.Context, req *pb.BeneficiaryAtRequest) (*pb.BeneficiaryAtResponse, error) {
	b, err := s.svc.Beneficiaries.GetBeneficiaryAt(ctx, req.Owner, int(req.Index))
	if notFound(err) {
		return &pb.BeneficiaryAtResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetBeneficiaryAt_FullMethodName, err)
	}
	return &pb.BeneficiaryAtResponse{
		Found:       true,
		Beneficiary: &pb.Beneficiary{Recipient: b.Recipient, Percentage: int32(b.Percentage)},
	}, nil
}

func (s *GRPCServer) GetBeneficiaryCount(ctx context.Context, req *pb.OwnerRequest) (*pb.CountResponse, error) {
	n, err := s.svc.Beneficiaries.GetBeneficiaryCount(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetBeneficiaryCount_FullMethodName, err)
	}
	return &pb.CountResponse{Count: int32(n)}, nil
}

func (s *GRPCServer) GetTotalPercentage(ctx context.Context, req *pb.OwnerRequest) (*pb.CountResponse, error) {
	n, err := s.svc.Beneficiaries.GetTotalPercentage(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetTotalPercentage_FullMethodName, err)
	}
	return &pb.CountResponse{Count: int32(n)}, nil
}

func (s *GRPCServer) GetRemainingPercentage(ctx context.Context, req *pb.OwnerRequest) (*pb.CountResponse, error) {
	n, err := s.svc.Beneficiaries.GetRemainingPercentage(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetRemainingPercentage_FullMethodName, err)
	}
	return &pb.CountResponse{Count: int32(n)}, nil
}

func (s *GRPCServer) IsConfigurationComplete(ctx context.Context, req *pb.OwnerRequest) (*pb.BoolResponse, error) {
	v, err := s.svc.Beneficiaries.IsConfigurationComplete(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_IsConfigurationComplete_FullMethodName, err)
	}
	return &pb.BoolResponse{Value: v}, nil
}

func (s *GRPCServer) GetBeneficiariesPage(ctx context.Context, req *pb.BeneficiariesPageRequest) (*pb.BeneficiariesPageResponse, error) {
	p, err := s.svc.Beneficiaries.GetBeneficiariesPage(ctx, req.Owner, int(req.Page))
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetBeneficiariesPage_FullMethodName, err)
	}
	return &pb.BeneficiariesPageResponse{
		Page:          int32(p.Page),
		TotalCount:    int32(p.TotalCount),
		HasMore:       p.HasMore,
		Beneficiaries: toProtoBeneficiaries(p.Beneficiaries),
	}, nil
}
