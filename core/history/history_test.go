package history

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntervalDegenerate(t *testing.T) {
	_, err := NewInterval(5, 5)
	require.ErrorIs(t, err, ErrDegenerateInterval)

	_, err = NewInterval(6, 5)
	require.ErrorIs(t, err, ErrDegenerateInterval)

	iv, err := NewInterval(5, 6)
	require.NoError(t, err)
	require.True(t, iv.Contains(5))
	require.False(t, iv.Contains(6))
}

func TestUpdateTryGetAgainst(t *testing.T) {
	u, err := NewUpdate(100, 200, "stake-at-100")
	require.NoError(t, err)

	v, err := u.TryGetAgainst(150)
	require.NoError(t, err)
	require.Equal(t, "stake-at-100", v)

	_, err = u.TryGetAgainst(200)
	require.ErrorIs(t, err, ErrElementNotInInterval)

	_, err = u.TryGetAgainst(99)
	require.ErrorIs(t, err, ErrElementNotInInterval)
}

func TestHistoryTryGetAt(t *testing.T) {
	u0, err := NewUpdate[uint64](0, 100, 1000)
	require.NoError(t, err)
	u1, err := NewUpdate[uint64](100, 200, 2000)
	require.NoError(t, err)

	h := History[uint64]{0: u0, 1: u1}

	got, err := h.TryGetAt(1)
	require.NoError(t, err)
	val, err := got.TryGetAgainst(150)
	require.NoError(t, err)
	require.Equal(t, uint64(2000), val)

	_, err = h.TryGetAt(2)
	require.ErrorIs(t, err, ErrMissingHistoryEntry)
}
