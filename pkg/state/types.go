package state

import (
	"context"

	"github.com/gitswitch/gitswitch/pkg/config"
	"github.com/gitswitch/gitswitch/pkg/log"
)

// State represents a state of running tool.
type State struct {
	*config.Config
	*config.Project
	context.Context
	log.Logger
	cancel context.CancelFunc
}

// Close releases the state's resources.
func (s State) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}
