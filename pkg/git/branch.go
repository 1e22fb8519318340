// Package git switches a working tree to a branch by driving the git
// command-line engine as a subprocess.
package git

// BranchType tells local branches apart from remote-tracking ones.
type BranchType int

const (
	// BranchLocal is a branch under refs/heads.
	BranchLocal BranchType = iota
	// BranchRemote is a remote-tracking branch under refs/remotes.
	BranchRemote
)

// Branch identifies the checkout target.
type Branch struct {
	// Name is the full branch name, including the remote prefix for
	// remote-tracking branches (e.g. "origin/feature-x").
	Name string
	Type BranchType
	// NameWithoutRemote is the local branch name derived by stripping the
	// remote prefix. Only meaningful when Type is BranchRemote.
	NameWithoutRemote string
}

// Repository locates the working tree operations run against.
type Repository struct {
	Path string
}
