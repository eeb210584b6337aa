package lesson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	steps := Steps()

	titles := make([]string, len(steps))
	for i := range steps {
		titles[i] = steps[i].Title
	}

	assert.Equal(t, []string{
		"Hello, world",
		"Bindings",
		"Branching",
		"Counted loop",
		"Functions",
	}, titles)

	for _, step := range steps {
		assert.NotEmpty(t, step.Source, "step %q has no source snippet", step.Title)
		assert.NotNil(t, step.Run, "step %q has no run function", step.Title)
	}
}

func TestStepsMatchRun(t *testing.T) {
	sb := strings.Builder{}
	for i, step := range Steps() {
		if i > 0 {
			sb.WriteString(Separator + "\n")
		}
		require.NoError(t, step.Run(&sb))
	}

	runOutput := strings.Builder{}
	require.NoError(t, Run(&runOutput))

	assert.Equal(t, runOutput.String(), sb.String())
}

func TestTranscript(t *testing.T) {
	full, err := Transcript(len(Steps()))
	require.NoError(t, err)
	assert.Equal(t, wantOutput, full)

	t.Run("is a prefix of the full output at every step", func(t *testing.T) {
		for n := 1; n < len(Steps()); n++ {
			partial, err := Transcript(n)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(full, partial), "transcript of %d steps is not a prefix", n)
		}
	})

	t.Run("is capped at the number of steps", func(t *testing.T) {
		capped, err := Transcript(len(Steps()) + 3)
		require.NoError(t, err)
		assert.Equal(t, full, capped)
	})

	t.Run("zero steps is empty", func(t *testing.T) {
		empty, err := Transcript(0)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
