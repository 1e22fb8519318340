package git

import (
	"strings"

	gitv5 "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/gitswitch/gitswitch/pkg/errors"
)

var (
	// ErrRepositoryNotFound when the path holds no git repository.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrBranchNotFound when the name matches no local or remote-tracking
	// branch.
	ErrBranchNotFound = errors.New("branch not found")
)

// ResolveBranch classifies a branch name against the repository's references.
// A name under refs/heads resolves to a local branch; otherwise a name of the
// form "<remote>/<branch>" matching a configured remote resolves to a
// remote-tracking branch with the remote prefix stripped.
func ResolveBranch(repo Repository, name string) (Branch, error) {
	r, err := gitv5.PlainOpen(repo.Path)
	if err != nil {
		return Branch{}, errors.Wrap(err, ErrRepositoryNotFound)
	}
	if _, err = r.Reference(plumbing.NewBranchReferenceName(name), false); err == nil {
		return Branch{Name: name, Type: BranchLocal}, nil
	}
	remotes, err := r.Remotes()
	if err != nil {
		return Branch{}, errors.Wrap(err, ErrBranchNotFound)
	}
	for _, remote := range remotes {
		prefix := remote.Config().Name + "/"
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		local := strings.TrimPrefix(name, prefix)
		ref := plumbing.NewRemoteReferenceName(remote.Config().Name, local)
		if _, err = r.Reference(ref, false); err == nil {
			return Branch{Name: name, Type: BranchRemote, NameWithoutRemote: local}, nil
		}
	}
	return Branch{}, errors.Wrap(errors.New(name), ErrBranchNotFound)
}
