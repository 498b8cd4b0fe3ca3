package cli

import (
	"context"

	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
)

func (a *App) switchCommands() []command {
	return []command{
		{name: "switch-register", usage: "switch-register <interval> <grace>", minArgs: 2, auth: true, run: a.registerSwitch},
		{name: "heartbeat", usage: "heartbeat", auth: true, run: a.heartbeat},
		{name: "try-trigger", usage: "try-trigger <owner>", minArgs: 1, auth: true, run: a.tryTrigger},
		{name: "switch", usage: "switch [owner]", run: a.showSwitch},
		{name: "status", usage: "status [owner]", run: a.status},
		{name: "triggered", usage: "triggered [owner]", run: a.triggered},
	}
}

func (a *App) printSwitch(s *pb.Switch) {
	a.printf("owner:         %s\n", s.Owner)
	a.printf("interval:      %d\n", s.Interval)
	a.printf("grace period:  %d\n", s.GracePeriod)
	a.printf("last check-in: %d\n", s.LastCheckIn)
	a.printf("deadline:      %d\n", s.Deadline)
	if s.Triggered && s.TriggeredAt != nil {
		a.printf("triggered at:  %d\n", *s.TriggeredAt)
	} else {
		a.printf("triggered:     %s\n", yesNo(s.Triggered))
	}
}

func (a *App) registerSwitch(ctx context.Context, args []string) error {
	interval, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	grace, err := parseInt64(args[1])
	if err != nil {
		return err
	}

	resp, err := a.client.RegisterSwitch(ctx, interval, grace)
	if err != nil {
		return err
	}
	a.printf("Switch registered, ownership token #%d\n", resp.GetTokenId())
	a.printSwitch(resp.Switch)
	return nil
}

func (a *App) heartbeat(ctx context.Context, _ []string) error {
	resp, err := a.client.Heartbeat(ctx)
	if err != nil {
		return err
	}
	a.printf("Checked in at block %d, next deadline %d\n", resp.LastCheckIn, resp.Deadline)
	return nil
}

func (a *App) tryTrigger(ctx context.Context, args []string) error {
	resp, err := a.client.TryTrigger(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("Switch of %s triggered\n", args[0])
	if resp.Switch != nil {
		a.printSwitch(resp.Switch)
	}
	return nil
}

func (a *App) showSwitch(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	resp, err := a.client.GetSwitch(ctx, owner)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("%s has no switch\n", owner)
		return nil
	}
	a.printSwitch(resp.Switch)
	return nil
}

func (a *App) status(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	resp, err := a.client.GetStatus(ctx, owner)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("%s has no switch\n", owner)
		return nil
	}
	a.printf("active: %s, last check-in: %d\n", yesNo(resp.Active), resp.LastCheckIn)
	return nil
}

func (a *App) triggered(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	ok, err := a.client.IsTriggered(ctx, owner)
	if err != nil {
		return err
	}
	a.printf("%s\n", yesNo(ok))
	return nil
}
