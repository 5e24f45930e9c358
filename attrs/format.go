package attrs

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatFloat returns the shortest decimal representation of `f`,
// without exponent: 0, 10, 2.5, -0.125
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Format returns the textual form of an attribute value.
// Nested maps are written as a CSS declaration list (k:v;k2:v2).
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return FormatFloat(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case bool:
		return strconv.FormatBool(v)
	case *Map:
		chunks := make([]string, 0, v.Len())
		for k, sub := range v.All() {
			chunks = append(chunks, k+":"+Format(sub))
		}
		return strings.Join(chunks, ";")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
