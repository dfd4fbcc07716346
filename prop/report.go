package prop

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// FormatValue renders v in the canonical JSON-ish form the spec's failure
// reports use: null, numbers, booleans, double-quoted strings, ordered
// lists, and maps rendered key-sorted (Go has no ordered map literal, so a
// deterministic key order stands in for "the order the caller built it
// in"). Anything else falls back to its %v representation, same as the
// source format's catch-all.
func FormatValue(v any) string {
	if v == nil {
		return "null"
	}
	switch x := v.(type) {
	case bool:
		if x {
			return "true"
		}
		return "false"
	case string:
		return quoteString(x)
	case error:
		return quoteString(x.Error())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		keys := rv.MapKeys()
		pairs := make([]string, len(keys))
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprintf("%v", keys[i].Interface()) < fmt.Sprintf("%v", keys[j].Interface())
		})
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s: %s", FormatValue(k.Interface()), FormatValue(rv.MapIndex(k).Interface()))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return FormatValue(rv.Elem().Interface())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = FormatValue(a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatReport renders a PropertyFailure in the spec's two canonical
// textual forms: with a shrink trace when shrinking found something
// simpler, or with the original error when no shrink succeeded.
func FormatReport(f *PropertyFailure) string {
	var b strings.Builder
	if len(f.Trace) == 0 {
		fmt.Fprintf(&b, "property failed (args found): %s\n  %v", formatArgs(f.Args), f.Cause)
		return b.String()
	}
	fmt.Fprintf(&b, "property failed (simplest args found by shrinking): %s", formatArgs(f.Args))
	for _, step := range f.Trace {
		fmt.Fprintf(&b, "\n  shrinking found simpler failing arg %d: %s", step.ArgIndex, formatArgs(step.Args))
	}
	return b.String()
}
