package cli

import (
	"context"
	"fmt"
	"strings"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

// pageSize is the server's beneficiaries page length, used to number rows.
const pageSize = 50

func (a *App) beneficiaryCommands() []command {
	return []command{
		{name: "beneficiaries-set", usage: "beneficiaries-set <recipient:percent>...", minArgs: 1, auth: true, run: a.setBeneficiaries},
		{name: "beneficiaries", usage: "beneficiaries [owner]", run: a.showBeneficiaries},
		{name: "beneficiary-add", usage: "beneficiary-add <recipient> <percent>", minArgs: 2, auth: true, run: a.addBeneficiary},
		{name: "beneficiary-remove", usage: "beneficiary-remove <index>", minArgs: 1, auth: true, run: a.removeBeneficiary},
		{name: "beneficiaries-clear", usage: "beneficiaries-clear", auth: true, run: a.clearBeneficiaries},
		{name: "beneficiary-at", usage: "beneficiary-at <index> [owner]", minArgs: 1, run: a.beneficiaryAt},
		{name: "beneficiary-count", usage: "beneficiary-count [owner]", run: a.beneficiaryCount},
		{name: "percent-total", usage: "percent-total [owner]", run: a.totalPercentage},
		{name: "percent-remaining", usage: "percent-remaining [owner]", run: a.remainingPercentage},
		{name: "config-complete", usage: "config-complete [owner]", run: a.configComplete},
		{name: "beneficiaries-page", usage: "beneficiaries-page <page> [owner]", minArgs: 1, run: a.beneficiariesPage},
	}
}

// parseAllocation reads "recipient:percent".
func parseAllocation(s string) (*pb.Beneficiary, error) {
	recipient, pct, ok := strings.Cut(s, ":")
	if !ok || recipient == "" {
		return nil, fmt.Errorf("%w: %q is not recipient:percent", errUsage, s)
	}
	n, err := parseInt(pct)
	if err != nil {
		return nil, err
	}
	return &pb.Beneficiary{Recipient: recipient, Percentage: int32(n)}, nil
}

func (a *App) printBeneficiaries(list []*pb.Beneficiary, offset int) {
	for i, b := range list {
		a.printf("%3d  %-20s %3d%%\n", offset+i, b.Recipient, b.Percentage)
	}
}

func (a *App) setBeneficiaries(ctx context.Context, args []string) error {
	list := make([]*pb.Beneficiary, 0, len(args))
	for _, s := range args {
		b, err := parseAllocation(s)
		if err != nil {
			return err
		}
		list = append(list, b)
	}
	if err := a.client.SetBeneficiaries(ctx, list); err != nil {
		return err
	}
	a.printf("%d beneficiaries set\n", len(list))
	return nil
}

func (a *App) showBeneficiaries(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	resp, err := a.client.GetBeneficiaries(ctx, owner)
	if err != nil {
		return err
	}
	if !resp.Found || len(resp.Beneficiaries) == 0 {
		a.printf("%s has no beneficiaries\n", owner)
		return nil
	}
	a.printBeneficiaries(resp.Beneficiaries, 0)
	return nil
}

func (a *App) addBeneficiary(ctx context.Context, args []string) error {
	pct, err := parseInt(args[1])
	if err != nil {
		return err
	}
	idx, err := a.client.AddBeneficiary(ctx, args[0], pct)
	if err != nil {
		return err
	}
	a.printf("%s added at index %d\n", args[0], idx)
	return nil
}

func (a *App) removeBeneficiary(ctx context.Context, args []string) error {
	idx, err := parseInt(args[0])
	if err != nil {
		return err
	}
	if err := a.client.RemoveBeneficiary(ctx, idx); err != nil {
		return err
	}
	a.printf("Beneficiary %d removed\n", idx)
	return nil
}

func (a *App) clearBeneficiaries(ctx context.Context, _ []string) error {
	if err := a.client.ClearBeneficiaries(ctx); err != nil {
		return err
	}
	a.printf("Beneficiaries cleared\n")
	return nil
}

func (a *App) beneficiaryAt(ctx context.Context, args []string) error {
	idx, err := parseInt(args[0])
	if err != nil {
		return err
	}
	owner, err := a.ownerArg(args, 1)
	if err != nil {
		return err
	}
	resp, err := a.client.GetBeneficiaryAt(ctx, owner, idx)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("no beneficiary at index %d\n", idx)
		return nil
	}
	a.printBeneficiaries([]*pb.Beneficiary{resp.Beneficiary}, idx)
	return nil
}

func (a *App) countFor(ctx context.Context, args []string, f func(context.Context, string) (int, error), format string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	n, err := f(ctx, owner)
	if err != nil {
		return err
	}
	a.printf(format, n)
	return nil
}

func (a *App) beneficiaryCount(ctx context.Context, args []string) error {
	return a.countFor(ctx, args, a.client.GetBeneficiaryCount, "%d\n")
}

func (a *App) totalPercentage(ctx context.Context, args []string) error {
	return a.countFor(ctx, args, a.client.GetTotalPercentage, "%d%%\n")
}

func (a *App) remainingPercentage(ctx context.Context, args []string) error {
	return a.countFor(ctx, args, a.client.GetRemainingPercentage, "%d%%\n")
}

func (a *App) configComplete(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	ok, err := a.client.IsConfigurationComplete(ctx, owner)
	if err != nil {
		return err
	}
	a.printf("%s\n", yesNo(ok))
	return nil
}

func (a *App) beneficiariesPage(ctx context.Context, args []string) error {
	page, err := parseInt(args[0])
	if err != nil {
		return err
	}
	owner, err := a.ownerArg(args, 1)
	if err != nil {
		return err
	}
	resp, err := a.client.GetBeneficiariesPage(ctx, owner, page)
	if err != nil {
		return err
	}
	a.printf("page %d, %d total\n", resp.Page, resp.TotalCount)
	a.printBeneficiaries(resp.Beneficiaries, page*pageSize)
	if resp.HasMore {
		a.printf("more: beneficiaries-page %d %s\n", page+1, owner)
	}
	return nil
}
