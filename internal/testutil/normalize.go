package testutil

import (
	"encoding/json"
	"strings"
	"testing"
)

// volatileFields change on every run and are dropped before comparison.
var volatileFields = map[string]bool{
	"runId":       true,
	"generatedAt": true,
	"duration":    true,
}

// MarshalNormalized renders data as stable JSON: object keys sorted, two-space
// indentation, a trailing newline. Slice order is kept because it is part of
// what the tests assert. Absolute fixture paths become "$FIXTURE".
func MarshalNormalized(t *testing.T, fixture *FixtureContext, data any) []byte {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Failed to marshal data for normalization: %v", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("Failed to unmarshal data for normalization: %v", err)
	}

	out, err := json.MarshalIndent(normalizeValue(generic, fixture.Root), "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal normalized data: %v", err)
	}
	return append(out, '\n')
}

func normalizeValue(v any, root string) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			if volatileFields[k] {
				continue
			}
			result[k] = normalizeValue(item, root)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = normalizeValue(item, root)
		}
		return result
	case string:
		if root != "" {
			val = strings.ReplaceAll(val, root, "$FIXTURE")
		}
		return strings.ReplaceAll(val, "\\", "/")
	default:
		return v
	}
}
