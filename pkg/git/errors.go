package git

import (
	"fmt"

	"github.com/gitswitch/gitswitch/pkg/errors"
)

var (
	// ErrAuthentication when the engine rejected the supplied credentials.
	ErrAuthentication = errors.New("authentication failed")
	// ErrGitCommand when the engine failed for a non-credential reason.
	ErrGitCommand = errors.New("git command failed")
	// ErrSubmodule when the post-checkout submodule cascade failed.
	ErrSubmodule = errors.New("submodule update failed")
)

// AuthenticationError reports an engine failure whose stderr matched a known
// credential-related signature. Callers may prompt for credentials and retry;
// this package never retries on its own.
type AuthenticationError struct {
	// Reason is the matched stderr line.
	Reason string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrAuthentication, e.Reason)
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// CommandError reports any other engine failure, verbatim.
type CommandError struct {
	ExitCode int
	Stderr   string
	// Label names the failed operation.
	Label string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%v: %s exited %d: %s", ErrGitCommand, e.Label, e.ExitCode, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return ErrGitCommand
}
