package gitswitch

import (
	"os"
	"path"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gitswitch/gitswitch/pkg/cli"
	"github.com/gitswitch/gitswitch/pkg/metadata"
)

func addFlags(root *cobra.Command, opts *cli.Options) {
	fl := root.PersistentFlags()
	addConfigFlag(fl, opts)
	fl.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"log subprocess diagnostics")
}

func addConfigFlag(fl *pflag.FlagSet, opts *cli.Options) {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	config := path.Join(wd, "."+metadata.Name+".yaml")
	fl.StringVar(&opts.ConfigPath, "config", config,
		metadata.Name+" configuration file")
}
