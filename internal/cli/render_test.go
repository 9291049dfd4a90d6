package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"1234567", "1,234,567"},
		{"-12345", "-12,345"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "-"},
		{"bool", true, "true"},
		{"string", "California", "California"},
		{"whole number", float64(12345), "12,345"},
		{"fraction", 42.7, "42.7"},
		{"negative whole", float64(-1000), "-1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.in); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderMap(t *testing.T) {
	data := map[string]any{
		"zipCode":    "90210",
		"population": float64(12345),
		"income": map[string]any{
			"medianHousehold": float64(81234),
		},
		"counties": []any{"Los Angeles"},
	}

	out := renderMap(data, 0)

	for _, want := range []string{"zipCode", "90210", "12,345", "income", "medianHousehold", "81,234", "Los Angeles"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderMap() output missing %q:\n%s", want, out)
		}
	}

	// Stable ordering: counties before income before population.
	if strings.Index(out, "counties") > strings.Index(out, "income") ||
		strings.Index(out, "income") > strings.Index(out, "population") {
		t.Errorf("renderMap() keys not sorted:\n%s", out)
	}
}

func TestRenderLookupInvalidPayload(t *testing.T) {
	// A scalar payload cannot be rendered as a table.
	if err := renderLookup("90210", json.RawMessage(`"just a string"`)); err == nil {
		t.Error("renderLookup() should fail on a non-object payload")
	}
}
