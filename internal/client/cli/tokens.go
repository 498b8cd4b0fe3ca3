package cli

import "context"

func (a *App) tokenCommands() []command {
	return []command{
		{name: "execute", usage: "execute <owner>", minArgs: 1, auth: true, run: a.execute},
		{name: "payouts", usage: "payouts [owner]", run: a.payouts},
		{name: "token-transfer", usage: "token-transfer <id> <from> <to>", minArgs: 3, auth: true, run: a.transferToken},
		{name: "token", usage: "token <id>", minArgs: 1, run: a.showToken},
		{name: "token-owner", usage: "token-owner <id>", minArgs: 1, run: a.tokenOwner},
		{name: "token-last", usage: "token-last", run: a.lastToken},
		{name: "token-uri", usage: "token-uri <id>", minArgs: 1, run: a.tokenURI},
		{name: "token-for", usage: "token-for [owner]", run: a.tokenForSwitch},
	}
}

func (a *App) execute(ctx context.Context, args []string) error {
	d, err := a.client.ExecuteTrigger(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("Distributed %d from %s at block %d\n", d.Total, d.Owner, d.Height)
	for _, p := range d.Payouts {
		a.printf("  %-20s %d\n", p.Recipient, p.Amount)
	}
	return nil
}

func (a *App) payouts(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	list, err := a.client.GetPayouts(ctx, owner)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("no payouts\n")
		return nil
	}
	for _, p := range list {
		a.printf("%-20s %10d  block %d\n", p.Recipient, p.Amount, p.Height)
	}
	return nil
}

func (a *App) transferToken(ctx context.Context, args []string) error {
	id, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	if err := a.client.TransferToken(ctx, id, args[1], args[2]); err != nil {
		return err
	}
	a.printf("Token #%d transferred to %s\n", id, args[2])
	return nil
}

func (a *App) showToken(ctx context.Context, args []string) error {
	id, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	resp, err := a.client.GetToken(ctx, id)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("token #%d does not exist\n", id)
		return nil
	}
	a.printf("#%d holder %s, switch %s\n%s\n", resp.Token.Id, resp.Token.Holder, resp.Token.SwitchOwner, resp.Token.Uri)
	return nil
}

func (a *App) tokenOwner(ctx context.Context, args []string) error {
	id, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	resp, err := a.client.GetTokenOwner(ctx, id)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("token #%d does not exist\n", id)
		return nil
	}
	a.printf("%s\n", resp.Holder)
	return nil
}

func (a *App) lastToken(ctx context.Context, _ []string) error {
	id, err := a.client.GetLastTokenID(ctx)
	if err != nil {
		return err
	}
	a.printf("%d\n", id)
	return nil
}

func (a *App) tokenURI(ctx context.Context, args []string) error {
	id, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	resp, err := a.client.GetTokenURI(ctx, id)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("token #%d does not exist\n", id)
		return nil
	}
	a.printf("%s\n", resp.Uri)
	return nil
}

func (a *App) tokenForSwitch(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	resp, err := a.client.GetTokenForSwitch(ctx, owner)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("%s has no token\n", owner)
		return nil
	}
	a.printf("#%d held by %s\n", resp.Token.Id, resp.Token.Holder)
	return nil
}
