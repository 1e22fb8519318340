package cli

// Options holds flag values shared by all subcommands.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// CheckoutOptions holds flag values of the checkout subcommand.
type CheckoutOptions struct {
	Branch   string
	Username string
	Password string
	// Quiet suppresses progress reporting; without a registered sink the
	// engine is not asked for a progress stream at all.
	Quiet bool
}
