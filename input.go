package vgl

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// InputKind distinguishes the shapes a TransformInput can take.
type InputKind uint8

const (
	InputAbsent   InputKind = iota // no value; parsers return their defaults
	InputSequence                  // ordered raw values, e.g. [1, "2", 3, "YXZ"]
	InputRecord                    // named x/y/z (and order) fields
	InputText                      // whitespace-delimited text, e.g. "1 2 3 YXZ"
)

// Record holds the raw named fields of a structured transform input.
// Order is only consulted by ParseRotation.
type Record struct {
	X, Y, Z any
	Order   any
}

// TransformInput is the loosely-typed value accepted for a position, rotation
// or scale prop. Raw values are parsed leniently; see ParsePosition,
// ParseRotation and ParseScale.
type TransformInput struct {
	Kind InputKind
	Seq  []any
	Rec  Record
	Text string
}

// Absent returns an input with no value.
func Absent() TransformInput {
	return TransformInput{}
}

// Seq returns a sequence input of the given raw values.
func Seq(values ...any) TransformInput {
	return TransformInput{Kind: InputSequence, Seq: values}
}

// Rec returns a record input with x, y and z fields.
func Rec(x, y, z any) TransformInput {
	return TransformInput{Kind: InputRecord, Rec: Record{X: x, Y: y, Z: z}}
}

// RecOrder returns a record input with x, y, z and order fields.
func RecOrder(x, y, z, order any) TransformInput {
	return TransformInput{Kind: InputRecord, Rec: Record{X: x, Y: y, Z: z, Order: order}}
}

// Text returns a whitespace-delimited text input.
func Text(s string) TransformInput {
	return TransformInput{Kind: InputText, Text: s}
}

// InputOf classifies an arbitrary value. nil, false, numeric zero and the
// empty string are absent. Slices and arrays (including mgl64.Vec3) become
// sequences, string-keyed maps, Record and Euler become records, strings
// become text, and any other scalar becomes the text of its string form.
func InputOf(v any) TransformInput {
	switch t := v.(type) {
	case nil:
		return Absent()
	case TransformInput:
		return t
	case *TransformInput:
		if t == nil {
			return Absent()
		}
		return *t
	case Record:
		return TransformInput{Kind: InputRecord, Rec: t}
	case *Record:
		if t == nil {
			return Absent()
		}
		return TransformInput{Kind: InputRecord, Rec: *t}
	case Euler:
		return RecOrder(t.X, t.Y, t.Z, t.Order.String())
	case map[string]any:
		return RecOrder(t["x"], t["y"], t["z"], t["order"])
	case string:
		return Text(t)
	case bool:
		if !t {
			return Absent()
		}
		return Text("true")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Absent()
		}
		vals := make([]any, rv.Len())
		for i := range vals {
			vals[i] = rv.Index(i).Interface()
		}
		return Seq(vals...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		field := func(k string) any {
			e := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			if !e.IsValid() {
				return nil
			}
			return e.Interface()
		}
		return RecOrder(field("x"), field("y"), field("z"), field("order"))
	case reflect.Pointer:
		if rv.IsNil() {
			return Absent()
		}
		return InputOf(rv.Elem().Interface())
	}

	if f, ok := numericValue(v); ok {
		if f == 0 || math.IsNaN(f) {
			return Absent()
		}
		return Text(formatNumber(f))
	}
	return Text(fmt.Sprint(v))
}

// IsAbsent reports whether the parsers treat the input as missing.
func (in TransformInput) IsAbsent() bool {
	return in.Kind == InputAbsent || (in.Kind == InputText && in.Text == "")
}

// String formats the input for diagnostics.
func (in TransformInput) String() string {
	switch in.Kind {
	case InputSequence:
		parts := make([]string, len(in.Seq))
		for i, v := range in.Seq {
			parts[i] = rawString(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case InputRecord:
		s := fmt.Sprintf("{x: %s, y: %s, z: %s", rawString(in.Rec.X), rawString(in.Rec.Y), rawString(in.Rec.Z))
		if in.Rec.Order != nil {
			s += ", order: " + rawString(in.Rec.Order)
		}
		return s + "}"
	case InputText:
		return strconv.Quote(in.Text)
	default:
		return "<absent>"
	}
}

// UnmarshalYAML decodes sequences, mappings and scalars into the matching
// input shape. A null scalar is absent.
func (in *TransformInput) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.SequenceNode:
		vals := make([]any, len(node.Content))
		for i, c := range node.Content {
			if err := c.Decode(&vals[i]); err != nil {
				return err
			}
		}
		*in = Seq(vals...)
		return nil
	case yaml.MappingNode:
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			return err
		}
		*in = RecOrder(m["x"], m["y"], m["z"], m["order"])
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*in = Absent()
			return nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		*in = InputOf(v)
		return nil
	default:
		return fmt.Errorf("vgl: cannot decode transform input from YAML node kind %d", node.Kind)
	}
}

// UnmarshalJSON decodes arrays, objects and scalars the same way as
// UnmarshalYAML.
func (in *TransformInput) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*in = InputOf(v)
	return nil
}

// --- Raw value parsing ---

// floatPrefix matches the longest leading decimal literal, the way
// JavaScript's parseFloat reads its argument.
var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// parseFloat converts a raw value to a number. Numbers pass through; strings
// are read up to the first character that cannot continue a decimal literal;
// anything without a numeric prefix is NaN.
func parseFloat(v any) float64 {
	if f, ok := numericValue(v); ok {
		return f
	}
	switch t := v.(type) {
	case nil, bool:
		return math.NaN()
	case string:
		return parseFloatString(t)
	case json.Number:
		return parseFloatString(string(t))
	case fmt.Stringer:
		return parseFloatString(t.String())
	default:
		return parseFloatString(fmt.Sprint(v))
	}
}

func parseFloatString(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// Out-of-range literals come back as ±Inf with ErrRange, which is what we want.
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// orFallback mirrors `x || 1`: NaN and zero are replaced by fallback.
func orFallback(f, fallback float64) float64 {
	if f == 0 || math.IsNaN(f) {
		return fallback
	}
	return f
}

func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

// rawString stringifies a raw value the way string concatenation would.
func rawString(v any) string {
	if f, ok := numericValue(v); ok {
		return formatNumber(f)
	}
	switch t := v.(type) {
	case nil:
		return "undefined"
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func isJSSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// splitFields splits trimmed text on whitespace runs. Blank text yields one
// empty token, so "   " reads as a single unparsable element.
func splitFields(s string) []string {
	fields := strings.FieldsFunc(s, isJSSpace)
	if len(fields) == 0 {
		return []string{""}
	}
	return fields
}
