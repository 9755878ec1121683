package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCapacityV1Q(t *testing.T) {
	rec, err := lookupCapacity(1, ECLevelQ)
	require.NoError(t, err)
	assert.Equal(t, 13, rec.dataCodewords)
	assert.Equal(t, 13, rec.ecPerBlock)
	require.Len(t, rec.groups, 1)
	assert.Equal(t, 1, rec.groups[0].blocks)
	assert.Equal(t, 13, rec.groups[0].dataPerLen)
}

func TestLookupCapacityV1M(t *testing.T) {
	rec, err := lookupCapacity(1, ECLevelM)
	require.NoError(t, err)
	assert.Equal(t, 16, rec.dataCodewords)
	assert.Equal(t, 10, rec.ecPerBlock)
}

func TestLookupCapacityUnknownVersion(t *testing.T) {
	_, err := lookupCapacity(41, ECLevelM)
	require.Error(t, err)
	var qrErr *Error
	require.ErrorAs(t, err, &qrErr)
	assert.Equal(t, CapacityUnavailable, qrErr.Kind)
}

func TestEcLevelFromFileCode(t *testing.T) {
	cases := map[int]ECLevel{0: ECLevelM, 1: ECLevelL, 2: ECLevelH, 3: ECLevelQ}
	for code, want := range cases {
		got, ok := ecLevelFromFileCode(code)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ecLevelFromFileCode(9)
	assert.False(t, ok)
}
