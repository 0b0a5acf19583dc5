package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mj1618/axtree/internal/platform"
)

// ValueKind tags the variant held by a Value.
type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBool    ValueKind = "bool"
	KindPoint   ValueKind = "point"
	KindSize    ValueKind = "size"
	KindRect    ValueKind = "rect"
	KindRange   ValueKind = "range"
	KindList    ValueKind = "list"
	KindUnknown ValueKind = "unknown"
)

// Value is an element's current value. Only the fields matching Kind are
// meaningful. KindUnknown carries the host's textual description in Text.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
	Point  platform.Point
	Size   platform.Size
	Rect   platform.Rect
	Range  platform.Range
	Items  []Value
}

// ValueOf classifies a raw attribute value returned by the adapter.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case string:
		return Value{Kind: KindString, Text: v}
	case bool:
		return Value{Kind: KindBool, Bool: v}
	case int:
		return Value{Kind: KindNumber, Number: float64(v)}
	case int32:
		return Value{Kind: KindNumber, Number: float64(v)}
	case int64:
		return Value{Kind: KindNumber, Number: float64(v)}
	case uint32:
		return Value{Kind: KindNumber, Number: float64(v)}
	case uint64:
		return Value{Kind: KindNumber, Number: float64(v)}
	case float32:
		return numberValue(float64(v))
	case float64:
		return numberValue(v)
	case platform.Point:
		return Value{Kind: KindPoint, Point: v}
	case platform.Size:
		return Value{Kind: KindSize, Size: v}
	case platform.Rect:
		return Value{Kind: KindRect, Rect: v}
	case platform.Range:
		return Value{Kind: KindRange, Range: v}
	case []any:
		return listValue(v)
	case []platform.Element:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return listValue(items)
	case platform.Opaque:
		return Value{Kind: KindUnknown, Text: v.Description}
	case fmt.Stringer:
		return Value{Kind: KindUnknown, Text: v.String()}
	default:
		return Value{Kind: KindUnknown, Text: fmt.Sprintf("%v", v)}
	}
}

func numberValue(f float64) Value {
	// NaN and infinities have no JSON representation.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{Kind: KindUnknown, Text: fmt.Sprintf("%v", f)}
	}
	return Value{Kind: KindNumber, Number: f}
}

func listValue(raw []any) Value {
	items := make([]Value, len(raw))
	for i, r := range raw {
		items[i] = ValueOf(r)
	}
	return Value{Kind: KindList, Items: items}
}

// StringValue is a convenience constructor for text values.
func StringValue(s string) *Value {
	return &Value{Kind: KindString, Text: s}
}

// Interface returns the JSON-representable shape of v: scalars as themselves,
// geometry and ranges as a record tagged with "type", lists as slices, and
// unclassified values as their description.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString, KindUnknown:
		return v.Text
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	case KindPoint:
		return map[string]any{"type": "point", "x": v.Point.X, "y": v.Point.Y}
	case KindSize:
		return map[string]any{"type": "size", "width": v.Size.Width, "height": v.Size.Height}
	case KindRect:
		return map[string]any{
			"type": "rect",
			"x":    v.Rect.X, "y": v.Rect.Y,
			"width": v.Rect.Width, "height": v.Rect.Height,
		}
	case KindRange:
		return map[string]any{"type": "range", "location": v.Range.Location, "length": v.Range.Length}
	case KindList:
		out := make([]any, len(v.Items))
		for i, it := range v.Items {
			out[i] = it.Interface()
		}
		return out
	default:
		return v.Text
	}
}

// String renders v for the text output format.
func (v Value) String() string {
	switch v.Kind {
	case KindString, KindUnknown:
		return v.Text
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindPoint:
		return "point" + v.Point.String()
	case KindSize:
		return "size" + v.Size.String()
	case KindRect:
		return "rect" + v.Rect.String()
	case KindRange:
		return "range" + v.Range.String()
	case KindList:
		return fmt.Sprintf("[%d items]", len(v.Items))
	default:
		return v.Text
	}
}

// MarshalJSON leaves HTML characters unescaped so values print like names.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.Interface()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
