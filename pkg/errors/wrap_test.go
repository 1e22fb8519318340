package errors_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gitswitch/gitswitch/pkg/errors"
)

var errSentinel = errors.New("sentinel")

func TestWrap(t *testing.T) {
	err := errors.Wrap(errors.New("cause"), errSentinel)
	assert.Check(t, errors.Is(err, errSentinel))
	assert.Check(t, err.Error() == "sentinel: cause")
}

func TestWrapNil(t *testing.T) {
	assert.Check(t, errors.Wrap(nil, errSentinel) == nil)
}

func TestWrapAlreadyWrapped(t *testing.T) {
	err := errors.Wrap(errors.New("cause"), errSentinel)
	again := errors.Wrap(err, errSentinel)
	assert.Check(t, again == err)
}
