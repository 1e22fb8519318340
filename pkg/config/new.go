package config

// New creates the configuration for one invocation: defaults, overlaid by
// the project's config file, overlaid by environment overrides, validated.
func New(project Project) (Config, error) {
	c := newDefaults()
	if err := c.load(project); err != nil {
		return Config{}, err
	}
	if err := c.overrides(); err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
