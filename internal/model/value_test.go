package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/mj1618/axtree/internal/platform"
	"gopkg.in/yaml.v3"
)

type stringerValue struct{}

func (stringerValue) String() string { return "<custom>" }

func TestValueOf_Kinds(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want ValueKind
	}{
		{"string", "hello", KindString},
		{"bool", true, KindBool},
		{"int", 42, KindNumber},
		{"int64", int64(7), KindNumber},
		{"float", 0.5, KindNumber},
		{"nan", math.NaN(), KindUnknown},
		{"inf", math.Inf(1), KindUnknown},
		{"point", platform.Point{X: 1, Y: 2}, KindPoint},
		{"size", platform.Size{Width: 3, Height: 4}, KindSize},
		{"rect", platform.Rect{X: 1, Y: 2, Width: 3, Height: 4}, KindRect},
		{"range", platform.Range{Location: 2, Length: 5}, KindRange},
		{"list", []any{"a", 1}, KindList},
		{"opaque", platform.Opaque{Description: "<AXTextMarker>"}, KindUnknown},
		{"stringer", stringerValue{}, KindUnknown},
		{"struct", struct{ A int }{1}, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueOf(tt.raw).Kind; got != tt.want {
				t.Errorf("ValueOf(%v).Kind = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"string", "Save", `"Save"`},
		{"number", 3, `3`},
		{"bool", false, `false`},
		{"point", platform.Point{X: 1, Y: 2}, `{"type":"point","x":1,"y":2}`},
		{"size", platform.Size{Width: 3, Height: 4}, `{"height":4,"type":"size","width":3}`},
		{"rect", platform.Rect{X: 1, Y: 2, Width: 3, Height: 4}, `{"height":4,"type":"rect","width":3,"x":1,"y":2}`},
		{"range", platform.Range{Location: 2, Length: 5}, `{"length":5,"location":2,"type":"range"}`},
		{"list", []any{"a", 1}, `["a",1]`},
		{"opaque", platform.Opaque{Description: "<AXTextMarker>"}, `"<AXTextMarker>"`},
		{"html string", "a < b && c > d", `"a < b && c > d"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(ValueOf(tt.raw))
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("json = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestValue_MarshalYAML(t *testing.T) {
	v := ValueOf(platform.Point{X: 5, Y: 6})
	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if m["type"] != "point" {
		t.Errorf("type: got %v, want point", m["type"])
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{"abc", "abc"},
		{1.5, "1.5"},
		{true, "true"},
		{platform.Range{Location: 1, Length: 2}, "range{1, 2}"},
		{[]any{1, 2, 3}, "[3 items]"},
	}
	for _, tt := range tests {
		if got := ValueOf(tt.raw).String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
