package git

import (
	"context"

	"github.com/gitswitch/gitswitch/pkg/errors"
	"github.com/gitswitch/gitswitch/pkg/sh"
)

// updateSubmodulesIfEnabled gates the post-checkout cascade on the toggle
// snapshot held by the client and surfaces its failure unchanged as the
// operation's failure.
func (c Client) updateSubmodulesIfEnabled(ctx context.Context, repo Repository) error {
	if !c.RecurseSubmodules {
		return nil
	}
	return errors.Wrap(c.UpdateSubmodules(ctx, repo), ErrSubmodule)
}

// UpdateSubmodules synchronizes submodule URLs and updates the checked out
// submodule trees. The two engine invocations run sequentially, never
// concurrently with the checkout process.
func (c Client) UpdateSubmodules(ctx context.Context, repo Repository) error {
	steps := [][]string{
		{"submodule", "sync", "--recursive"},
		{"submodule", "update", "--recursive", "--force"},
	}
	for _, args := range steps {
		res, err := c.run()(ctx, sh.Command{
			Name:  "git",
			Args:  args,
			Dir:   repo.Path,
			Label: "submodule " + args[1],
		})
		if err != nil {
			return err
		}
		if res.ExitCode != 0 {
			return &CommandError{ExitCode: res.ExitCode, Stderr: res.Stderr, Label: "submodule " + args[1]}
		}
	}
	return nil
}
