package config

// Config for a gitswitch to operate.
type Config struct {
	// RecurseSubmodules cascades a submodule synchronization after every
	// successful branch checkout.
	RecurseSubmodules bool `yaml:"recurseSubmodules"`
	Progress          `yaml:"progress"`
	Auth              `yaml:"auth"`
}

// Progress holds the phase weighting of the overall progress value.
type Progress struct {
	CheckoutWeight float64 `valid:"range(0|1)" yaml:"checkoutWeight"`
	FilterWeight   float64 `valid:"range(0|1)" yaml:"filterWeight"`
}

// Auth holds authentication failure classification settings.
type Auth struct {
	// ExtraErrorPatterns extend the built-in set of stderr signatures that
	// classify a failure as an authentication failure.
	ExtraErrorPatterns []string `yaml:"extraErrorPatterns"`
}

// Project locates the repository an invocation operates on.
type Project struct {
	Path       string
	ConfigPath string
}
