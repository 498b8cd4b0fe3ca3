package grpc

import (
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

func toProtoSwitch(sw *models.Switch) *pb.Switch {
	return &pb.Switch{
		Owner:       sw.Owner,
		Interval:    sw.Interval,
		GracePeriod: sw.GracePeriod,
		LastCheckIn: sw.LastCheckIn,
		Deadline:    sw.Deadline(),
		Triggered:   sw.Triggered,
		TriggeredAt: sw.TriggeredAt,
	}
}

func toProtoBeneficiaries(list []models.Beneficiary) []*pb.Beneficiary {
	out := make([]*pb.Beneficiary, 0, len(list))
	for _, b := range list {
		out = append(out, &pb.Beneficiary{Recipient: b.Recipient, Percentage: int32(b.Percentage)})
	}
	return out
}

func fromProtoBeneficiaries(list []*pb.Beneficiary) []models.Beneficiary {
	out := make([]models.Beneficiary, 0, len(list))
	for _, b := range list {
		out = append(out, models.Beneficiary{Recipient: b.GetRecipient(), Percentage: int(b.GetPercentage())})
	}
	return out
}

func toProtoPayouts(list []models.Payout) []*pb.Payout {
	out := make([]*pb.Payout, 0, len(list))
	for _, p := range list {
		out = append(out, &pb.Payout{Recipient: p.Recipient, Amount: p.Amount, Height: p.Height})
	}
	return out
}

func toProtoToken(t *models.Token) *pb.Token {
	return &pb.Token{
		Id:          t.ID,
		Holder:      t.Holder,
		SwitchOwner: t.SwitchOwner,
		Uri:         t.URI(),
	}
}
