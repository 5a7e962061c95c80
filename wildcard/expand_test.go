package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExpandJoined(t *testing.T) {
	out, err := Expand("(Y[X=1, M=.])", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "(Y[X=1, M=0] | Y[X=1, M=1])", out[0])
}

func TestExpandCustomJoin(t *testing.T) {
	out, err := Expand("(Y[M=.] == 1)", Options{Join: "&"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "(Y[M=0] == 1 & Y[M=1] == 1)", out[0])
}

func TestExpandWholeInputFallback(t *testing.T) {
	// no parenthesized group: the whole expression is one span, so the two
	// occurrences of M=. expand together rather than independently
	out, err := Expand("Y[X=1,M=.] > Y[X=1,M=.]", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Y[X=1,M=0] > Y[X=1,M=0] | Y[X=1,M=1] > Y[X=1,M=1]", out[0])
}

func TestExpandNoWildcardIsIdentity(t *testing.T) {
	for _, input := range []string{
		"(Y[X=1])",
		"Y[X=1] == Y[X=0]",
		"(Y[X=1]) > (Y[X=0])",
		"",
	} {
		out, err := Expand(input, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, input, out[0])
	}
}

func TestExpandTwoVariablesOrder(t *testing.T) {
	// distinct variables in order of first appearance, first variable
	// cycling fastest
	out, err := Expand("(Y[X=., M=.])", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t,
		"(Y[X=0, M=0] | Y[X=1, M=0] | Y[X=0, M=1] | Y[X=1, M=1])",
		out[0])
}

func TestExpandRepeatedVariableVariesJointly(t *testing.T) {
	out, err := Expand("(Y[M=.] == X[M=.])", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "(Y[M=0] == X[M=0] | Y[M=1] == X[M=1])", out[0])
}

func TestExpandCartesian(t *testing.T) {
	out, err := Expand("(Y[X=.]) > (Y[M=.])", Options{Cartesian: true})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(Y[X=0]) > (Y[M=0])",
		"(Y[X=1]) > (Y[M=0])",
		"(Y[X=0]) > (Y[M=1])",
		"(Y[X=1]) > (Y[M=1])",
	}, out)
}

func TestExpandCartesianWithoutWildcards(t *testing.T) {
	out, err := Expand("(Y[X=1]) > (Y[X=0])", Options{Cartesian: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"(Y[X=1]) > (Y[X=0])"}, out)
}

func TestExpandSpacedAssignment(t *testing.T) {
	// spacing around the equals sign is accepted and normalized away
	out, err := Expand("(Y[M = .])", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "(Y[M=0] | Y[M=1])", out[0])
}

func TestExpandVerboseLogger(t *testing.T) {
	out, err := Expand("(Y[M=.])", Options{Join: "|", Logger: zap.NewNop()})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "(Y[M=0] | Y[M=1])", out[0])
}
