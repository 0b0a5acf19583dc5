package platform

import "testing"

func TestValueStrings(t *testing.T) {
	tests := []struct {
		name string
		v    interface{ String() string }
		want string
	}{
		{"point", Point{X: 10, Y: 20.5}, "{10, 20.5}"},
		{"size", Size{Width: 300, Height: 400}, "{300, 400}"},
		{"rect", Rect{X: 1, Y: 2, Width: 3, Height: 4}, "{{1, 2}, {3, 4}}"},
		{"range", Range{Location: 5, Length: 0}, "{5, 0}"},
		{"opaque", Opaque{Description: "<AXTextMarker 0x1>"}, "<AXTextMarker 0x1>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
