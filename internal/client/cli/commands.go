package cli

import (
	"errors"
	"fmt"
	"strconv"
)

var errOwnerRequired = errors.New("owner required when not logged in")

func (a *App) commands() []command {
	var cmds []command
	cmds = append(cmds, a.accountCommands()...)
	cmds = append(cmds, a.switchCommands()...)
	cmds = append(cmds, a.vaultCommands()...)
	cmds = append(cmds, a.guardianCommands()...)
	cmds = append(cmds, a.beneficiaryCommands()...)
	cmds = append(cmds, a.tokenCommands()...)
	return cmds
}

// ownerArg returns args[i], or the logged-in user when it is absent.
func (a *App) ownerArg(args []string, i int) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	if u := a.auth.Username(); u != "" {
		return u, nil
	}
	return "", errOwnerRequired
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errUsage, s)
	}
	return n, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errUsage, s)
	}
	return n, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
