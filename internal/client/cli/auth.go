package cli

import (
	"context"

	"github.com/dmitrijs2005/deadswitch/internal/common"
)

func (a *App) accountCommands() []command {
	return []command{
		{name: "register", usage: "register [username]", run: a.register},
		{name: "login", usage: "login [username]", run: a.login},
		{name: "logout", usage: "logout", auth: true, run: a.logout},
		{name: "ping", usage: "ping", run: a.ping},
	}
}

// usernameArg takes the username from args or prompts for it.
func (a *App) usernameArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	name, err := a.prompt.Line("Enter username")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errUsage
	}
	return name, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	username, err := a.usernameArg(args)
	if err != nil {
		return err
	}
	password, err := a.prompt.Secret("Choose password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		return err
	}
	a.printf("Account %s registered, you can login now\n", username)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	username, err := a.usernameArg(args)
	if err != nil {
		return err
	}
	password, err := a.prompt.Secret("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		return err
	}
	a.setMode(ModeOnline)
	a.printf("Logged in as %s\n", username)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out\n")
	return nil
}

func (a *App) ping(ctx context.Context, _ []string) error {
	h, err := a.client.Ping(ctx)
	if err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	a.printf("OK, block height %d\n", h)
	return nil
}
