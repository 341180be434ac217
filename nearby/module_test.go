package nearby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sqlite/vtab"
)

func TestTable_BestIndex(t *testing.T) {
	eq := func(col int, usable bool) vtab.Constraint {
		return vtab.Constraint{Column: col, Op: vtab.OpEQ, Usable: usable}
	}
	testCases := []struct {
		description string
		constraints []vtab.Constraint
		expectIdx   int
		expectCost  float64
	}{
		{
			description: "no constraints",
			expectIdx:   idxScan,
			expectCost:  scanCost,
		},
		{
			description: "constraint on a point column only",
			constraints: []vtab.Constraint{eq(colX, true)},
			expectIdx:   idxScan,
			expectCost:  scanCost,
		},
		{
			description: "all query columns",
			constraints: []vtab.Constraint{eq(colRadius, true), eq(colQX, true), eq(colQY, true)},
			expectIdx:   idxNearby,
			expectCost:  nearbyCost,
		},
		{
			description: "query columns not yet available in a join",
			constraints: []vtab.Constraint{eq(colQX, false), eq(colQY, false), eq(colRadius, true)},
			expectIdx:   idxScan,
			expectCost:  partialCost,
		},
		{
			description: "partial query columns",
			constraints: []vtab.Constraint{eq(colQX, true)},
			expectIdx:   idxScan,
			expectCost:  partialCost,
		},
	}

	table := &Table{}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			info := &vtab.IndexInfo{Constraints: testCase.constraints}
			require.NoError(t, table.BestIndex(info))
			assert.Equal(t, testCase.expectIdx, info.IdxNum)
			assert.Equal(t, testCase.expectCost, info.EstimatedCost)
			for _, c := range info.Constraints {
				assert.Equal(t, testCase.expectIdx == idxNearby, c.Omit, "column %d", c.Column)
			}
		})
	}

	info := &vtab.IndexInfo{Constraints: []vtab.Constraint{eq(colRadius, true), eq(colQX, true), eq(colQY, true)}}
	require.NoError(t, table.BestIndex(info))
	assert.Equal(t, 2, info.Constraints[0].ArgIndex)
	assert.Equal(t, 0, info.Constraints[1].ArgIndex)
	assert.Equal(t, 1, info.Constraints[2].ArgIndex)
}
