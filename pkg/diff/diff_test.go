package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateDiffIdenticalStatesProduceNoDiff(t *testing.T) {
	t.Parallel()

	state := map[string]any{"locale": "en_US.UTF-8"}
	require.Empty(t, StateDiff(state, map[string]any{"locale": "en_US.UTF-8"}, "current", "desired"))
}

func TestStateDiffShowsChangedProperty(t *testing.T) {
	t.Parallel()

	current := map[string]any{"locale": "en_GB.UTF-8", "timezone": "UTC"}
	desired := map[string]any{"locale": "en_US.UTF-8", "timezone": "UTC"}

	out := StateDiff(current, desired, "current", "desired")

	require.Contains(t, out, "--- current")
	require.Contains(t, out, "+++ desired")
	require.Contains(t, out, "GB")
	require.Contains(t, out, "US")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	expected := strings.Repeat("old line\n", 3000)
	actual := strings.Repeat("new line\n", 3000)

	out := Unified([]byte(expected), []byte(actual), "a", "b")

	require.Contains(t, out, truncateMessage)
	require.LessOrEqual(t, len(strings.Split(out, "\n")), maxDiffLines+3)
}

func TestUnifiedMarksInsertionsAndDeletions(t *testing.T) {
	t.Parallel()

	out := Unified([]byte("alpha\nbravo\n"), []byte("alpha\ncharlie\n"), "a", "b")

	require.Contains(t, out, "-bravo")
	require.Contains(t, out, "+charlie")
}
