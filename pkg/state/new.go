package state

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gitswitch/gitswitch/pkg/log"
)

// New creates a state whose context cancels on interrupt, so an in-flight
// subprocess is torn down with the tool.
func New(log log.Logger) State {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-stop
		log.Println("Signal detected, canceling...")
		cancel()
	}()
	return State{
		Context: ctx,
		Logger:  log,
		cancel:  cancel,
	}
}
