// Package cli glues configuration, state and the git client into the
// operations exposed by the command line.
package cli

import (
	"fmt"

	"github.com/gitswitch/gitswitch/pkg/config"
	pkgerrors "github.com/gitswitch/gitswitch/pkg/errors"
	"github.com/gitswitch/gitswitch/pkg/git"
	"github.com/gitswitch/gitswitch/pkg/log"
	"github.com/gitswitch/gitswitch/pkg/log/color"
	"github.com/gitswitch/gitswitch/pkg/state"
)

var (
	// ErrConfigurationIsInvalid when configuration is invalid.
	ErrConfigurationIsInvalid = pkgerrors.New("configuration is invalid")
	// ErrCheckoutFailed when the checkout operation failed.
	ErrCheckoutFailed = pkgerrors.New("checkout failed")
)

// Checkout switches the project's working tree to a branch, streaming
// progress to the logger.
func Checkout(logger log.Logger, projectFactory func() config.Project, opts CheckoutOptions) error {
	st, client, repo, err := setup(logger, projectFactory, "checkout")
	if err != nil {
		return err
	}
	defer st.Close()

	branch, err := git.ResolveBranch(repo, opts.Branch)
	if err != nil {
		return pkgerrors.Wrap(err, ErrCheckoutFailed)
	}
	var account git.Credentials
	if opts.Username != "" {
		account = git.Basic{Username: opts.Username, Password: opts.Password}
	}
	var fn git.ProgressFunc
	if !opts.Quiet {
		fn = renderProgress(st)
		warnOldEngine(st, client)
	}
	return pkgerrors.Wrap(
		client.CheckoutBranch(st.Context, repo, account, branch, fn),
		ErrCheckoutFailed,
	)
}

// Restore restores the given paths from the current commit snapshot.
func Restore(logger log.Logger, projectFactory func() config.Project, paths []string) error {
	st, client, repo, err := setup(logger, projectFactory, "restore")
	if err != nil {
		return err
	}
	defer st.Close()
	return pkgerrors.Wrap(client.CheckoutPaths(st.Context, repo, paths), ErrCheckoutFailed)
}

func setup(
	logger log.Logger,
	projectFactory func() config.Project,
	label string,
) (state.State, git.Client, git.Repository, error) {
	color.SetupMode()
	st := state.New(log.LabeledLogger{
		Label: color.Green("[gitswitch:" + label + "]"),
		Logger: log.TimedLogger{
			Logger: logger,
		},
	})
	project := projectFactory()
	cfg, err := config.New(project)
	if err != nil {
		st.Close()
		return st, git.Client{}, git.Repository{}, pkgerrors.Wrap(err, ErrConfigurationIsInvalid)
	}
	// One snapshot per invocation: the operation never observes later
	// configuration mutations.
	snap, err := config.Snapshot(cfg)
	if err != nil {
		st.Close()
		return st, git.Client{}, git.Repository{}, pkgerrors.Wrap(err, ErrConfigurationIsInvalid)
	}
	st.Project = &project
	st.Config = &snap
	client := git.Client{
		RecurseSubmodules:  snap.RecurseSubmodules,
		ExtraErrorPatterns: snap.ExtraErrorPatterns,
		CheckoutWeight:     snap.CheckoutWeight,
		FilterWeight:       snap.FilterWeight,
	}
	return st, client, git.Repository{Path: project.Path}, nil
}

func renderProgress(st state.State) git.ProgressFunc {
	return func(p git.Progress) {
		switch ev := p.(type) {
		case git.ContextualProgress:
			st.Println(ev.Title)
		case git.CheckoutProgress:
			st.Printf("%3.0f%% %s\n", ev.Fraction*percent, ev.Description)
		}
	}
}

const percent = 100

func warnOldEngine(st state.State, client git.Client) {
	v, err := client.EngineVersion(st.Context)
	if err != nil {
		return
	}
	if !git.SupportsProgress(v) {
		st.Println(color.Yellow("WARNING:"),
			fmt.Sprintf("git %s does not stream checkout progress", v))
	}
}
