package gitswitch

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gitswitch/gitswitch/pkg/cli"
	"github.com/gitswitch/gitswitch/pkg/metadata"
)

func root(customizers ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:     metadata.Name,
		Short:   metadata.Description,
		Version: metadata.Version,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	opts := &cli.Options{}
	subs := []subcommand{
		&checkout{Options: opts},
		&restore{Options: opts},
	}
	addFlags(cmd, opts)
	for _, sub := range subs {
		cmd.AddCommand(sub.command())
	}

	for _, opt := range customizers {
		opt(cmd)
	}
	return cmd
}

type subcommand interface {
	command() *cobra.Command
}
