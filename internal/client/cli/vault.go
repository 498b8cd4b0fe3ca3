package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/filex"
)

var errEmptyMessage = errors.New("message is empty")

func (a *App) vaultCommands() []command {
	return []command{
		{name: "deposit", usage: "deposit <amount>", minArgs: 1, auth: true, run: a.deposit},
		{name: "withdraw", usage: "withdraw <amount>", minArgs: 1, auth: true, run: a.withdraw},
		{name: "balance", usage: "balance [owner]", run: a.balance},
		{name: "message-set", usage: "message-set <hash> <locator>", minArgs: 2, auth: true, run: a.setMessage},
		{name: "message", usage: "message [owner]", run: a.showMessage},
		{name: "message-seal", usage: "message-seal [file]", auth: true, run: a.sealMessage},
		{name: "message-open", usage: "message-open [owner] [output file]", run: a.openMessage},
		{name: "presign-upload", usage: "presign-upload", auth: true, run: a.presignUpload},
		{name: "presign-download", usage: "presign-download [owner]", run: a.presignDownload},
	}
}

func (a *App) deposit(ctx context.Context, args []string) error {
	amount, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	bal, err := a.client.Deposit(ctx, amount)
	if err != nil {
		return err
	}
	a.printf("Balance: %d\n", bal)
	return nil
}

func (a *App) withdraw(ctx context.Context, args []string) error {
	amount, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	bal, err := a.client.Withdraw(ctx, amount)
	if err != nil {
		return err
	}
	a.printf("Balance: %d\n", bal)
	return nil
}

func (a *App) balance(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	bal, err := a.client.GetBalance(ctx, owner)
	if err != nil {
		return err
	}
	a.printf("Balance: %d\n", bal)
	return nil
}

func (a *App) setMessage(ctx context.Context, args []string) error {
	if err := a.client.SetMessage(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printf("Message recorded\n")
	return nil
}

func (a *App) showMessage(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	msg, err := a.client.GetMessage(ctx, owner)
	if err != nil {
		return err
	}
	if !msg.Found {
		a.printf("%s has no message\n", owner)
		return nil
	}
	a.printf("hash:    %s\nlocator: %s\n", msg.Hash, msg.Locator)
	return nil
}

// sealMessage encrypts a message typed in (or read from a file) and stores it.
func (a *App) sealMessage(ctx context.Context, args []string) error {
	var plaintext []byte
	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		plaintext = b
	} else {
		text, err := a.prompt.Lines("Enter the message for your beneficiaries")
		if err != nil {
			return err
		}
		plaintext = []byte(text)
	}
	defer common.WipeByteArray(plaintext)
	if len(plaintext) == 0 {
		return errEmptyMessage
	}

	passphrase, err := a.prompt.Secret("Message passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	hash, locator, err := a.messages.Store(ctx, plaintext, passphrase)
	if err != nil {
		return err
	}
	a.printf("Message sealed\nhash:    %s\nlocator: %s\n", hash, locator)
	return nil
}

func (a *App) openMessage(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	passphrase, err := a.prompt.Secret("Message passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	plaintext, err := a.messages.Fetch(ctx, owner, passphrase)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	if len(args) > 1 {
		if err := filex.WriteSecretFile(args[1], plaintext); err != nil {
			return err
		}
		a.printf("Message written to %s\n", args[1])
		return nil
	}
	a.printf("%s\n", plaintext)
	return nil
}

func (a *App) presignUpload(ctx context.Context, _ []string) error {
	resp, err := a.client.PresignMessageUpload(ctx)
	if err != nil {
		return err
	}
	a.printf("locator: %s\nurl:     %s\n", resp.Locator, resp.Url)
	return nil
}

func (a *App) presignDownload(ctx context.Context, args []string) error {
	owner, err := a.ownerArg(args, 0)
	if err != nil {
		return err
	}
	resp, err := a.client.PresignMessageDownload(ctx, owner)
	if err != nil {
		return err
	}
	if !resp.Found {
		a.printf("%s has no downloadable message\n", owner)
		return nil
	}
	a.printf("url: %s\n", resp.Url)
	return nil
}
