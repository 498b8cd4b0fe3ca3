package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

func (s *GRPCServer) AddGuardian(ctx context.Context, req *pb.GuardianRequest) (*pb.Empty, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_AddGuardian_FullMethodName, err)
	}
	if err := s.svc.Guardians.AddGuardian(ctx, owner, req.Guardian); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_AddGuardian_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RemoveGuardian(ctx context.Context, req *pb.GuardianRequest) (*pb.Empty, error) {
	owner, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RemoveGuardian_FullMethodName, err)
	}
	if err := s.svc.Guardians.RemoveGuardian(ctx, owner, req.Guardian); err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_RemoveGuardian_FullMethodName, err)
	}
	return &pb.Empty{}, nil
}

// ExtendDeadline is called by a guardian on behalf of req.Owner.
func (s *GRPCServer) ExtendDeadline(ctx context.Context, req *pb.OwnerRequest) (*pb.ExtendDeadlineResponse, error) {
	caller, err := principal(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ExtendDeadline_FullMethodName, err)
	}
	sw, count, err := s.svc.Guardians.ExtendDeadline(ctx, req.Owner, caller)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ExtendDeadline_FullMethodName, err)
	}
	return &pb.ExtendDeadlineResponse{
		LastCheckIn:    sw.LastCheckIn,
		Deadline:       sw.Deadline(),
		ExtensionCount: int32(count),
	}, nil
}

func (s *GRPCServer) IsGuardian(ctx context.Context, req *pb.GuardianQuery) (*pb.BoolResponse, error) {
	v, err := s.svc.Guardians.IsGuardian(ctx, req.Owner, req.Guardian)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_IsGuardian_FullMethodName, err)
	}
	return &pb.BoolResponse{Value: v}, nil
}

func (s *GRPCServer) GetExtensionCount(ctx context.Context, req *pb.GuardianQuery) (*pb.CountResponse, error) {
	n, err := s.svc.Guardians.GetExtensionCount(ctx, req.Owner, req.Guardian)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_GetExtensionCount_FullMethodName, err)
	}
	return &pb.CountResponse{Count: int32(n)}, nil
}

func (s *GRPCServer) ListGuardians(ctx context.Context, req *pb.OwnerRequest) (*pb.ListGuardiansResponse, error) {
	list, err := s.svc.Guardians.ListGuardians(ctx, req.Owner)
	if err != nil {
		return nil, s.toStatus(ctx, pb.DeadSwitch_ListGuardians_FullMethodName, err)
	}
	out := make([]*pb.Guardian, 0, len(list))
	for _, g := range list {
		out = append(out, &pb.Guardian{Guardian: g.Guardian, ExtensionCount: int32(g.ExtensionCount)})
	}
	return &pb.ListGuardiansResponse{Guardians: out}, nil
}
