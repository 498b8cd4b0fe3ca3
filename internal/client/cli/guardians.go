package cli

import "context"

func (a *App) guardianCommands() []command {
	return []command{
		{name: "guardian-add", usage: "guardian-add <guardian>", minArgs: 1, auth: true, run: a.addGuardian},
		{name: "guardian-remove", usage: "guardian-remove <guardian>", minArgs: 1, auth: true, run: a.removeGuardian},
		{name: "extend", usage: "extend <owner>", minArgs: 1, auth: true, run: a.extend},
		{name: "is-guardian", usage: "is-guardian <owner> <guardian>", minArgs: 2, run: a.isGuardian},
		{name: "extensions", usage: "extensions <owner> <guardian>", minArgs: 2, run: a.extensions},
		{name: "guardians", usage: "guardians [owner]", run: a.listGuardians},
	}
}

func (a *App) addGuardian(ctx context.Context, args []string) error {
	if err := a.client.AddGuardian(ctx, args[0]); err != nil {
		return err
	}
	a.printf("%s is now a guardian\n", args[0])
	return nil
}

func (a *App) removeGuardian(ctx context.Context, args []string) error {
	if err := a.client.RemoveGuardian(ctx, args[0]); err != nil {
		return err
	}
	a.printf("%s removed\n", args[0])
	return nil
}

func (a *App) extend(ctx context.Context, args []string) error {
	resp, err := a.client.ExtendDeadline(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("Deadline of %s extended to %d (extension %d)\n", args[0], resp.Deadline, resp.ExtensionCount)
	return nil
}

func (a *App) isGuardian(ctx context.Context, args []string) error {
	ok, err := a.client.IsGuardian(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printf("%s\n", yesNo(ok))
	return nil
}

func (a *App) extensions(ctx context.Context, args []string) error {
	n, err := a.client.GetExtensionCount(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printf("%d\n", n)
	return nil
}

func (a *App) listGuardians(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	list, err := a.client.ListGuardians(ctx, owner)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("no guardians\n")
		return nil
	}
	for _, g := range list {
		a.printf("%-20s extensions used: %d\n", g.Guardian, g.ExtensionCount)
	}
	return nil
}
