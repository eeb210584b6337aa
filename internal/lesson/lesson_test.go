package lesson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantOutput = `Hello, world!
--------------
x: 5, y: 15
--------------
Single digit
--------------
Number: 1
Number: 2
Number: 3
Number: 4
Number: 5
--------------
Hello, Rustacean!
`

func TestRun(t *testing.T) {
	sb := strings.Builder{}
	require.NoError(t, Run(&sb))

	assert.Equal(t, wantOutput, sb.String())

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 13)
}

func TestGreeting(t *testing.T) {
	sb := strings.Builder{}
	require.NoError(t, Greeting(&sb))
	assert.Equal(t, "Hello, world!\n", sb.String())
}

func TestArithmetic(t *testing.T) {
	sb := strings.Builder{}
	require.NoError(t, Arithmetic(&sb))
	assert.Equal(t, "x: 5, y: 15\n", sb.String())
}

func TestBranch(t *testing.T) {
	tests := []struct {
		name   string
		number int
		want   string
	}{
		{name: "well below the threshold", number: 7, want: "Single digit\n"},
		{name: "just below the threshold", number: 9, want: "Single digit\n"},
		{name: "at the threshold", number: 10, want: "Double digit\n"},
		{name: "above the threshold", number: 42, want: "Double digit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := strings.Builder{}
			require.NoError(t, Branch(&sb, tt.number))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestLoop(t *testing.T) {
	t.Run("counts the inclusive range in ascending order", func(t *testing.T) {
		sb := strings.Builder{}
		require.NoError(t, Loop(&sb, 1, 5))
		assert.Equal(t, "Number: 1\nNumber: 2\nNumber: 3\nNumber: 4\nNumber: 5\n", sb.String())
	})

	t.Run("a single-value range emits one line", func(t *testing.T) {
		sb := strings.Builder{}
		require.NoError(t, Loop(&sb, 2, 2))
		assert.Equal(t, "Number: 2\n", sb.String())
	})

	t.Run("an empty range emits nothing", func(t *testing.T) {
		sb := strings.Builder{}
		require.NoError(t, Loop(&sb, 3, 1))
		assert.Empty(t, sb.String())
	})
}

func TestGreet(t *testing.T) {
	tests := []struct {
		name  string
		greet string
		want  string
	}{
		{name: "default name", greet: DefaultName, want: "Hello, Rustacean!\n"},
		{name: "custom name", greet: "Ada", want: "Hello, Ada!\n"},
		{name: "empty name is interpolated verbatim", greet: "", want: "Hello, !\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := strings.Builder{}
			require.NoError(t, Greet(&sb, tt.greet))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestGreetOnlyChangesTheLastLine(t *testing.T) {
	sb := strings.Builder{}
	for i, step := range Steps() {
		if i == len(Steps())-1 {
			break
		}
		require.NoError(t, step.Run(&sb))
		sb.WriteString(Separator + "\n")
	}
	require.NoError(t, Greet(&sb, "Ada"))

	want := strings.TrimSuffix(wantOutput, "Hello, Rustacean!\n") + "Hello, Ada!\n"
	assert.Equal(t, want, sb.String())
}
