package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/gitswitch/gitswitch/pkg/errors"
)

func (c *Config) overrides() error {
	err := envconfig.Process("GITSWITCH", c)
	return errors.Wrap(err, ErrConfigFileCantBeRead)
}
