package nodal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalab/nodal/interpret"
	"github.com/causalab/nodal/model"
)

func TestInterpretType(t *testing.T) {
	m, err := model.New([]model.Node{
		{Name: "X"},
		{Name: "Y", Parents: []string{"X"}},
	})
	require.NoError(t, err)

	result, err := InterpretType(m, interpret.ByPosition(interpret.PositionRequest{Node: "Y", Positions: []int{2}}))
	require.NoError(t, err)

	records, ok := result.Get("Y")
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "Y | X = 1", records[0].Interpretation)
}

func TestExpandWildcard(t *testing.T) {
	out, err := ExpandWildcard("(Y[X=1, M=.])", "")
	require.NoError(t, err)
	assert.Equal(t, "(Y[X=1, M=0] | Y[X=1, M=1])", out)

	out, err = ExpandWildcard("(Y[M=.])", "&")
	require.NoError(t, err)
	assert.Equal(t, "(Y[M=0] & Y[M=1])", out)
}

func TestExpandWildcardAll(t *testing.T) {
	out, err := ExpandWildcardAll("(Y[X=.]) > (Y[M=.])")
	require.NoError(t, err)
	assert.Len(t, out, 4)
}
