package git

import (
	"context"

	"github.com/gitswitch/gitswitch/pkg/errors"
	"github.com/gitswitch/gitswitch/pkg/sh"
)

// Client drives checkout operations against one working tree at a time.
// Concurrent calls against different repositories are independent; callers
// must not run concurrent checkouts against the same working tree.
type Client struct {
	// Run executes subprocesses. Defaults to sh.Run.
	Run sh.RunFunc
	// RecurseSubmodules enables the post-checkout submodule cascade. Read
	// once per call.
	RecurseSubmodules bool
	// ExtraErrorPatterns extends the recognized authentication failure
	// signatures.
	ExtraErrorPatterns []string
	// CheckoutWeight and FilterWeight tune the progress phase merging.
	// Zero values use the parser defaults.
	CheckoutWeight float64
	FilterWeight   float64
}

func (c Client) run() sh.RunFunc {
	if c.Run != nil {
		return c.Run
	}
	return sh.Run
}

// CheckoutBranch switches the repository's working tree to the branch,
// streaming progress to fn when supplied. The first event fn receives is
// always the contextual zero event, delivered before the subprocess starts.
// On success the submodule cascade runs when enabled; a cascade failure is
// the operation's failure, since the contract is a fully consistent working
// tree, not merely a switched branch pointer.
func (c Client) CheckoutBranch(ctx context.Context, repo Repository, account Credentials, branch Branch, fn ProgressFunc) error {
	title := "Checking out branch " + branch.Name

	var lineFn func(string)
	if fn != nil {
		fn(ContextualProgress{Title: title, TargetBranch: branch.Name})
		parser := NewWeightedParser(true, c.CheckoutWeight, c.FilterWeight)
		lineFn = func(line string) {
			parsed, ok := parser.Parse(line)
			if !ok {
				return
			}
			fn(CheckoutProgress{
				Title:        title,
				Description:  parsed.Text,
				TargetBranch: branch.Name,
				Fraction:     parsed.Fraction,
			})
		}
	}

	args := CheckoutArgs(account, branch, fn != nil)
	res, err := c.run()(ctx, sh.Command{
		Name:   "git",
		Args:   args,
		Dir:    repo.Path,
		Env:    credentialEnv(account),
		Label:  title,
		LineFn: lineFn,
	})
	if err != nil {
		return errors.Wrap(err, ErrGitCommand)
	}
	if res.ExitCode != 0 {
		if reason, ok := matchAuthError(res.Stderr, errorPatterns(account, c.ExtraErrorPatterns)); ok {
			return &AuthenticationError{Reason: reason}
		}
		return &CommandError{ExitCode: res.ExitCode, Stderr: res.Stderr, Label: title}
	}
	return c.updateSubmodulesIfEnabled(ctx, repo)
}

// CheckoutPaths restores the given paths from the current commit snapshot.
// No progress tracking, no cascade, no credential handling.
func (c Client) CheckoutPaths(ctx context.Context, repo Repository, paths []string) error {
	res, err := c.run()(ctx, sh.Command{
		Name:  "git",
		Args:  RestoreArgs(paths),
		Dir:   repo.Path,
		Label: "checkout paths",
	})
	if err != nil {
		return errors.Wrap(err, ErrGitCommand)
	}
	if res.ExitCode != 0 {
		return &CommandError{ExitCode: res.ExitCode, Stderr: res.Stderr, Label: "checkout paths"}
	}
	return nil
}
