// Package compare implements the desired-state comparison used by the
// reconciler modules: overlay a desired property mapping onto the current
// resource and decide whether the result differs from what the appliance
// already holds.
package compare

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// volatileKeys are bookkeeping fields OneView stamps on every resource.
// They change on every write and must not participate in equality.
var volatileKeys = map[string]struct{}{
	"eTag":      {},
	"etag":      {},
	"created":   {},
	"modified":  {},
	"scopesUri": {},
}

// Merge returns current overlaid with desired; desired values win on key
// collision. Both inputs are normalized first so YAML-decoded desired
// values compare cleanly against JSON-decoded appliance state. Neither
// input is mutated.
func Merge(current, desired map[string]any) map[string]any {
	merged := make(map[string]any, len(current)+len(desired))
	for key, value := range Normalize(current) {
		merged[key] = value
	}
	for key, value := range Normalize(desired) {
		merged[key] = value
	}
	return merged
}

// Equal reports whether two property mappings are structurally equal,
// ignoring volatile metadata keys at any nesting depth and list ordering.
func Equal(a, b map[string]any) bool {
	return cmp.Equal(Normalize(a), Normalize(b), options()...)
}

// Diff returns a go-cmp report of the differences between two property
// mappings, or the empty string when they are equal.
func Diff(a, b map[string]any) string {
	return cmp.Diff(Normalize(a), Normalize(b), options()...)
}

func options() []cmp.Option {
	return []cmp.Option{
		cmpopts.IgnoreMapEntries(func(key string, _ any) bool {
			_, volatile := volatileKeys[key]
			return volatile
		}),
		cmpopts.SortSlices(func(a, b any) bool {
			return fmt.Sprint(a) < fmt.Sprint(b)
		}),
		cmpopts.EquateEmpty(),
	}
}

// Normalize round-trips a property mapping through JSON so every value
// uses the JSON type system: numbers become float64, typed structs become
// maps. Appliance state arrives that way already; desired state decoded
// from YAML does not.
func Normalize(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		// Property mappings come from YAML or JSON decoding and are
		// always marshalable; fall back to the input if not.
		return m
	}

	var normalized map[string]any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return m
	}
	return normalized
}
