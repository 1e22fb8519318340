package gitswitch

import (
	"github.com/spf13/cobra"

	"github.com/gitswitch/gitswitch/pkg/cli"
)

type restore struct {
	*cli.Options
	repoPath string
}

func (r *restore) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore PATH...",
		Short: "Restore paths from the current commit snapshot",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run,
	}
	cmd.Flags().StringVar(&r.repoPath, "repo", "", "repository path (default: config file directory)")
	return cmd
}

func (r *restore) run(cmd *cobra.Command, args []string) error {
	return cli.Restore(pickLogger(r.Options, cmd), projectFactory(r.Options, r.repoPath), args) //nolint:wrapcheck
}
