package compare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeDesiredWinsOnCollision(t *testing.T) {
	t.Parallel()

	current := map[string]any{"locale": "en_GB.UTF-8", "timezone": "UTC"}
	desired := map[string]any{"locale": "en_US.UTF-8"}

	merged := Merge(current, desired)

	require.Equal(t, "en_US.UTF-8", merged["locale"])
	require.Equal(t, "UTC", merged["timezone"])
	require.Equal(t, "en_GB.UTF-8", current["locale"], "merge must not mutate its inputs")
}

func TestMergeDivergenceScenario(t *testing.T) {
	t.Parallel()

	current := map[string]any{"locale": "en_GB.UTF-8", "timezone": "UTC"}
	desired := map[string]any{"locale": "en_US.UTF-8"}

	merged := Merge(current, desired)

	require.False(t, Equal(merged, current))
	require.Equal(t, map[string]any{"locale": "en_US.UTF-8", "timezone": "UTC"}, merged)
}

func TestEqualWhenDesiredAlreadySatisfied(t *testing.T) {
	t.Parallel()

	current := map[string]any{"locale": "en_US.UTF-8", "timezone": "UTC"}
	desired := map[string]any{"locale": "en_US.UTF-8"}

	require.True(t, Equal(Merge(current, desired), current))
}

func TestEqualIgnoresVolatileMetadata(t *testing.T) {
	t.Parallel()

	a := map[string]any{"locale": "en_US.UTF-8", "eTag": "1", "modified": "2021-01-01T00:00:00Z"}
	b := map[string]any{"locale": "en_US.UTF-8", "eTag": "2", "created": "2020-06-01T00:00:00Z"}

	require.True(t, Equal(a, b))
}

func TestEqualNormalizesNumericTypes(t *testing.T) {
	t.Parallel()

	fromYAML := map[string]any{"ntpServers": []any{"10.0.0.1"}, "pollingInterval": 300}
	fromJSON := map[string]any{"ntpServers": []any{"10.0.0.1"}, "pollingInterval": float64(300)}

	require.True(t, Equal(fromYAML, fromJSON))
}

func TestEqualIsOrderInsensitiveForLists(t *testing.T) {
	t.Parallel()

	a := map[string]any{"rangeUris": []any{"/rest/id-pools/vmac/ranges/a", "/rest/id-pools/vmac/ranges/b"}}
	b := map[string]any{"rangeUris": []any{"/rest/id-pools/vmac/ranges/b", "/rest/id-pools/vmac/ranges/a"}}

	require.True(t, Equal(a, b))
}

func TestEqualDetectsNestedDrift(t *testing.T) {
	t.Parallel()

	a := map[string]any{"time": map[string]any{"timezone": "UTC"}}
	b := map[string]any{"time": map[string]any{"timezone": "EST"}}

	require.False(t, Equal(a, b))
	require.NotEmpty(t, Diff(a, b))
}

func TestDiffEmptyForEqualMappings(t *testing.T) {
	t.Parallel()

	a := map[string]any{"locale": "en_US.UTF-8"}
	require.Empty(t, Diff(a, map[string]any{"locale": "en_US.UTF-8"}))
}
