package commands

import (
	"Mintopia/internal/cli/session"
	"Mintopia/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether a user is logged in" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) CheckArgs(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return nil
}

func (statusCmd) Run(ctx context.Context, _ *config.Config, args []string) error {
	if err := (statusCmd{}).CheckArgs(args); err != nil {
		return err
	}
	if session.MustFrom[any](ctx).IsAuthenticated() {
		fmt.Fprintln(Out, "Status: authenticated")
		return nil
	}
	fmt.Fprintln(Out, "Status: anonymous")
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
