package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLookup prints the demographic payload as a styled key/value tree.
func renderLookup(zip string, payload json.RawMessage) error {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("render payload: %w", err)
	}

	printNewline()
	fmt.Println(StyleTitle.Render("ZIP " + zip))
	printNewline()
	fmt.Print(renderMap(data, 0))
	return nil
}

// renderMap formats a payload map with stable key order. Nested objects are
// indented one level; scalar values are aligned per level.
func renderMap(data map[string]any, depth int) string {
	keys := make([]string, 0, len(data))
	width := 0
	for k := range data {
		keys = append(keys, k)
		if _, nested := data[k].(map[string]any); !nested && len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	indent := strings.Repeat("  ", depth)
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(width + 1)

	var b strings.Builder
	for _, k := range keys {
		switch v := data[k].(type) {
		case map[string]any:
			b.WriteString(indent + StyleKey.Render(k) + "\n")
			b.WriteString(renderMap(v, depth+1))
		case []any:
			b.WriteString(indent + keyStyle.Render(k) + " " + StyleValue.Render(renderList(v)) + "\n")
		case float64:
			b.WriteString(indent + keyStyle.Render(k) + " " + StyleNumber.Render(formatValue(v)) + "\n")
		default:
			b.WriteString(indent + keyStyle.Render(k) + " " + StyleValue.Render(formatValue(v)) + "\n")
		}
	}
	return b.String()
}

func renderList(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = formatValue(item)
	}
	return strings.Join(parts, ", ")
}

// formatValue renders a scalar payload value. JSON numbers arrive as
// float64; whole numbers are printed without a decimal point and grouped by
// thousands.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return groupDigits(strconv.FormatInt(int64(t), 10))
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// groupDigits inserts thousands separators into a decimal integer string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
