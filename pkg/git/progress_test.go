package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserRecognizesCheckoutLines(t *testing.T) {
	p := NewParser(false)

	parsed, ok := p.Parse("Checking out files:  50% (1310/2620)")
	require.True(t, ok)
	assert.InDelta(t, 0.5, parsed.Fraction, 0.001)
	assert.Equal(t, "Checking out files:  50% (1310/2620)", parsed.Text)

	parsed, ok = p.Parse("Checking out files: 100% (2620/2620)")
	require.True(t, ok)
	assert.InDelta(t, 1.0, parsed.Fraction, 0.001)
}

func TestParserRecognizesUpdatingFilesSpelling(t *testing.T) {
	p := NewParser(false)
	parsed, ok := p.Parse("Updating files:  25% (655/2620)")
	require.True(t, ok)
	assert.InDelta(t, 0.25, parsed.Fraction, 0.001)
}

func TestParserDropsUnrecognizedLines(t *testing.T) {
	p := NewParser(true)
	for _, line := range []string{
		"Switched to a new branch 'feature-x'",
		"Your branch is up to date with 'origin/main'.",
		"",
		"Resolving deltas:  10% (5/50)",
	} {
		_, ok := p.Parse(line)
		assert.False(t, ok, line)
	}
}

func TestParserValuesNeverRegress(t *testing.T) {
	p := NewParser(false)
	lines := []string{
		"Checking out files:  10% (262/2620)",
		"Checking out files:  60% (1572/2620)",
		"Checking out files:  40% (1048/2620)",
		"Checking out files:  60% (1572/2620)",
		"Checking out files:  90% (2358/2620)",
	}
	last := 0.0
	for _, line := range lines {
		parsed, ok := p.Parse(line)
		require.True(t, ok)
		assert.GreaterOrEqual(t, parsed.Fraction, last)
		last = parsed.Fraction
	}
}

func TestParserMergesFilterPhase(t *testing.T) {
	p := NewParser(true)

	parsed, ok := p.Parse("Checking out files: 100% (2620/2620)")
	require.True(t, ok)
	assert.InDelta(t, 0.8, parsed.Fraction, 0.001)

	// The filter phase continues from the checkout phase's share instead of
	// resetting to zero.
	parsed, ok = p.Parse("Filtering content:  50% (10/20)")
	require.True(t, ok)
	assert.InDelta(t, 0.9, parsed.Fraction, 0.001)

	parsed, ok = p.Parse("Filtering content: 100% (20/20)")
	require.True(t, ok)
	assert.InDelta(t, 1.0, parsed.Fraction, 0.001)
}

func TestParserLatePriorPhaseLineKeepsValue(t *testing.T) {
	p := NewParser(true)

	parsed, ok := p.Parse("Checking out files: 100% (2620/2620)")
	require.True(t, ok)
	assert.InDelta(t, 0.8, parsed.Fraction, 0.001)

	parsed, ok = p.Parse("Filtering content:  50% (10/20)")
	require.True(t, ok)
	assert.InDelta(t, 0.9, parsed.Fraction, 0.001)

	// A checkout line arriving after filtering started is weighted by its
	// own phase, so it sits below the running value and gets clamped.
	parsed, ok = p.Parse("Checking out files:  50% (5/10)")
	require.True(t, ok)
	assert.InDelta(t, 0.9, parsed.Fraction, 0.001)

	parsed, ok = p.Parse("Filtering content: 100% (20/20)")
	require.True(t, ok)
	assert.InDelta(t, 1.0, parsed.Fraction, 0.001)
}

func TestParserFractionFromCounts(t *testing.T) {
	// The value derives from the (done/total) counts, not the rounded
	// percentage the engine prints.
	p := NewParser(false)
	parsed, ok := p.Parse("Checking out files:  33% (1/3)")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, parsed.Fraction, 0.001)
}

func TestWeightedParser(t *testing.T) {
	p := NewWeightedParser(true, 0.5, 0.5)
	parsed, ok := p.Parse("Checking out files: 100% (10/10)")
	require.True(t, ok)
	assert.InDelta(t, 0.5, parsed.Fraction, 0.001)
}

func TestContextualProgressIsZero(t *testing.T) {
	var p Progress = ContextualProgress{Title: "Checking out branch main", TargetBranch: "main"}
	assert.Zero(t, p.Value())
	assert.Equal(t, "main", p.Branch())
}
