package git

// CheckoutArgs builds the argument list for switching the working tree to
// the given branch. The credential context contributes a leading transport
// segment; --progress is requested only when a progress sink is registered,
// otherwise the engine's progress stream is pure overhead.
func CheckoutArgs(account Credentials, branch Branch, wantsProgress bool) []string {
	args := append([]string{}, transportArgs(account)...)
	args = append(args, "checkout")
	if wantsProgress {
		args = append(args, "--progress")
	}
	switch branch.Type {
	case BranchRemote:
		// Checking out a remote-tracking ref creates and switches to a
		// local branch tracking it. The terminator keeps the branch name
		// from being taken for a path.
		args = append(args, branch.Name, "-b", branch.NameWithoutRemote, "--")
	default:
		args = append(args, branch.Name, "--")
	}
	return args
}

// RestoreArgs builds the argument list for restoring paths from the current
// commit snapshot.
func RestoreArgs(paths []string) []string {
	args := []string{"checkout", "HEAD", "--"}
	return append(args, paths...)
}
