package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpinner(t *testing.T) {
	sp := NewSpinner("importing")
	require.NotNil(t, sp)
	assert.Equal(t, "importing", sp.message)
	assert.NotNil(t, sp.writer)
	assert.False(t, sp.active)
	assert.False(t, sp.stopped)
}

func TestSpinnerStartIsIdempotent(t *testing.T) {
	sp := NewSpinner("working")
	sp.Start()
	assert.True(t, sp.active)

	sp.Start()
	assert.True(t, sp.active)

	sp.Stop()
	assert.True(t, sp.stopped)
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	sp := NewSpinner("working")
	sp.Stop()
	assert.True(t, sp.stopped)

	// Starting after stop stays a no-op.
	sp.Start()
	assert.False(t, sp.active)
}

func TestSpinnerSuccessAndFailDoNotPanic(t *testing.T) {
	sp := NewSpinner("working")
	sp.Start()
	sp.Success("done")

	sp = NewSpinner("working")
	sp.Start()
	sp.Fail("failed")
}

func TestSpinnerUpdateAfterStop(t *testing.T) {
	sp := NewSpinner("working")
	sp.Start()
	sp.Stop()
	sp.Update("still working")
	assert.Equal(t, "still working", sp.message)
}
