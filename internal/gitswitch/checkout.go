package gitswitch

import (
	"path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitswitch/gitswitch/pkg/cli"
	"github.com/gitswitch/gitswitch/pkg/config"
	"github.com/gitswitch/gitswitch/pkg/log"
)

type checkout struct {
	*cli.Options
	repoPath string
	co       cli.CheckoutOptions
}

func (c *checkout) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout BRANCH",
		Short: "Switch the working tree to a branch",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	fl := cmd.Flags()
	fl.StringVar(&c.repoPath, "repo", "", "repository path (default: config file directory)")
	fl.StringVar(&c.co.Username, "username", "", "username for the remote")
	fl.StringVar(&c.co.Password, "password", "", "password or token for the remote")
	fl.BoolVar(&c.co.Quiet, "quiet", false, "suppress progress reporting")
	return cmd
}

func (c *checkout) run(cmd *cobra.Command, args []string) error {
	c.co.Branch = args[0]
	return cli.Checkout(c.logger(cmd), c.project(), c.co) //nolint:wrapcheck
}

func (c *checkout) project() func() config.Project {
	return projectFactory(c.Options, c.repoPath)
}

func (c *checkout) logger(cmd *cobra.Command) log.Logger {
	return pickLogger(c.Options, cmd)
}

func projectFactory(opts *cli.Options, repoPath string) func() config.Project {
	return func() config.Project {
		project := config.Project{
			ConfigPath: opts.ConfigPath,
			Path:       path.Dir(opts.ConfigPath),
		}
		if repoPath != "" {
			project.Path = repoPath
		}
		return project
	}
}

// pickLogger uses the cobra command itself as the logger, unless verbose
// diagnostics were requested.
func pickLogger(opts *cli.Options, cmd *cobra.Command) log.Logger {
	if !opts.Verbose {
		return cmd
	}
	return log.Zapped{Sugar: zap.Must(zap.NewDevelopment()).Sugar()}
}
