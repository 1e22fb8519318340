package config

import (
	"github.com/jinzhu/copier"

	"github.com/gitswitch/gitswitch/pkg/errors"
)

// ErrCannotSnapshot when the configuration cannot be copied.
var ErrCannotSnapshot = errors.New("cannot snapshot configuration")

// Snapshot deep-copies the configuration, so a running operation reads its
// toggles exactly once and never observes later mutations.
func Snapshot(c Config) (Config, error) {
	var out Config
	err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true})
	return out, errors.Wrap(err, ErrCannotSnapshot)
}
