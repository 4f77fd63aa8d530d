package commands

import (
	"Mintopia/internal/cli/session"
	"Mintopia/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Clear the current session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) CheckArgs(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return nil
}

func (logoutCmd) Run(ctx context.Context, _ *config.Config, args []string) error {
	if err := (logoutCmd{}).CheckArgs(args); err != nil {
		return err
	}
	if err := session.MustFrom[any](ctx).Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
