package commands

import (
	"Mintopia/internal/cli/session"
	"Mintopia/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Print the current user as JSON" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) CheckArgs(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return nil
}

func (whoamiCmd) Run(ctx context.Context, _ *config.Config, args []string) error {
	if err := (whoamiCmd{}).CheckArgs(args); err != nil {
		return err
	}
	user, ok := session.MustFrom[any](ctx).CurrentUser()
	if !ok {
		return errors.New("not logged in")
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Fprintln(Out, string(b))
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
