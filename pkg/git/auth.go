package git

import "strings"

// Credentials supply authentication material for the subprocess and the
// stderr signatures that identify a credential-related failure.
type Credentials interface {
	// Env returns environment variables, KEY=value form, injected into the
	// subprocess environment.
	Env() []string
	// ErrorPatterns returns stderr substrings that mark an authentication
	// failure for this credential kind.
	ErrorPatterns() []string
}

// defaultErrorPatterns identify authentication failures regardless of the
// credential kind in use.
var defaultErrorPatterns = []string{ //nolint:gochecknoglobals
	"Permission denied (publickey)",
	"Authentication failed",
	"could not read Username",
	"could not read Password",
	"terminal prompts disabled",
	"Host key verification failed",
	"remote: Invalid username or password",
}

// Basic are username/password credentials fed to git through an inline
// credential helper, so the secret never appears on the command line.
type Basic struct {
	Username string
	Password string
}

func (b Basic) Env() []string {
	return []string{
		"GIT_TERMINAL_PROMPT=0",
		"GITSWITCH_USERNAME=" + b.Username,
		"GITSWITCH_PASSWORD=" + b.Password,
	}
}

func (b Basic) ErrorPatterns() []string {
	return defaultErrorPatterns
}

func transportArgs(account Credentials) []string {
	if _, ok := account.(Basic); ok {
		helper := `!f() { echo "username=${GITSWITCH_USERNAME}"; echo "password=${GITSWITCH_PASSWORD}"; }; f`
		return []string{"-c", "credential.helper=" + helper}
	}
	// Anonymous calls still disable any configured helper, so a stored
	// credential cannot silently satisfy the invocation.
	return []string{"-c", "credential.helper="}
}

func credentialEnv(account Credentials) []string {
	if account == nil {
		return []string{"GIT_TERMINAL_PROMPT=0"}
	}
	return account.Env()
}

func errorPatterns(account Credentials, extra []string) []string {
	patterns := append([]string{}, defaultErrorPatterns...)
	if account != nil {
		patterns = append(patterns, account.ErrorPatterns()...)
	}
	return append(patterns, extra...)
}

// matchAuthError scans stderr for a recognized authentication failure
// signature and returns the matched line.
func matchAuthError(stderr string, patterns []string) (string, bool) {
	for _, line := range strings.Split(stderr, "\n") {
		for _, p := range patterns {
			if strings.Contains(line, p) {
				return strings.TrimSpace(line), true
			}
		}
	}
	return "", false
}
