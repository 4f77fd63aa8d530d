package commands

import (
	"Mintopia/internal/cli/session"
	"Mintopia/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Store the given user as the current session" }
func (loginCmd) Usage() string       { return "login <json>" }

func (loginCmd) CheckArgs(args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return nil
}

func (loginCmd) Run(ctx context.Context, _ *config.Config, args []string) error {
	if err := (loginCmd{}).CheckArgs(args); err != nil {
		return err
	}
	var user any
	if err := session.DecodeJSON([]byte(args[0]), &user); err != nil {
		return fmt.Errorf("invalid user json: %w", err)
	}
	if err := session.MustFrom[any](ctx).Login(ctx, user); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
