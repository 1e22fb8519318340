package main

import (
	"os"

	"github.com/gitswitch/gitswitch/internal/gitswitch"
)

var (
	ExitFunc = os.Exit          //nolint:gochecknoglobals
	Opts     []gitswitch.Option //nolint:gochecknoglobals
)

func main() {
	ExitFunc(gitswitch.Main(Opts...))
}

func Main() {
	main()
}
