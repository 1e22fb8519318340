package git

import (
	"context"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"

	"github.com/gitswitch/gitswitch/pkg/errors"
	"github.com/gitswitch/gitswitch/pkg/sh"
)

// ErrEngineVersion when the engine version cannot be determined.
var ErrEngineVersion = errors.New("cannot determine git version")

// minProgressVersion is the oldest engine emitting the machine-parseable
// checkout progress stream.
var minProgressVersion = *semver.New("1.8.4") //nolint:gochecknoglobals

var versionPattern = regexp.MustCompile(`git version (\d+\.\d+\.\d+)`)

// EngineVersion probes the installed engine's version.
func (c Client) EngineVersion(ctx context.Context) (*semver.Version, error) {
	var out strings.Builder
	res, err := c.run()(ctx, sh.Command{
		Name:  "git",
		Args:  []string{"--version"},
		Label: "version probe",
		LineFn: func(line string) {
			out.WriteString(line)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, ErrEngineVersion)
	}
	if res.ExitCode != 0 {
		return nil, errors.Wrap(&CommandError{ExitCode: res.ExitCode, Stderr: res.Stderr, Label: "version probe"}, ErrEngineVersion)
	}
	m := versionPattern.FindStringSubmatch(out.String())
	if m == nil {
		return nil, errors.Wrap(errors.New(out.String()), ErrEngineVersion)
	}
	v, err := semver.NewVersion(m[1])
	return v, errors.Wrap(err, ErrEngineVersion)
}

// SupportsProgress reports whether the engine emits the progress stream.
func SupportsProgress(v *semver.Version) bool {
	return v != nil && !v.LessThan(minProgressVersion)
}
