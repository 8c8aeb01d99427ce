package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, StatusOk, StatusFor(false, false))
	require.Equal(t, StatusOk, StatusFor(false, true))
	require.Equal(t, StatusChanged, StatusFor(true, false))
	require.Equal(t, StatusWouldChange, StatusFor(true, true))
}
