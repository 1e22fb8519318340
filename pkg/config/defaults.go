package config

// newDefaults creates a new default configuration.
func newDefaults() Config {
	return Config{
		Progress: Progress{
			CheckoutWeight: 0.8, //nolint:gomnd
			FilterWeight:   0.2, //nolint:gomnd
		},
	}
}
