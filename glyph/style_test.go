package glyph

import "testing"

func TestTextStyleString(t *testing.T) {
	tests := []struct {
		style TextStyle
		want  string
	}{
		{StyleFill, "Fill"},
		{StyleStroke, "Stroke"},
		{StyleStrokeAndFill, "StrokeAndFill"},
		{TextStyle(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("TextStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestTextStyleFlags(t *testing.T) {
	tests := []struct {
		style  TextStyle
		fill   bool
		stroke bool
	}{
		{StyleFill, true, false},
		{StyleStroke, false, true},
		{StyleStrokeAndFill, true, true},
	}

	for _, tt := range tests {
		if got := tt.style.HasFill(); got != tt.fill {
			t.Errorf("%s.HasFill() = %v, want %v", tt.style, got, tt.fill)
		}
		if got := tt.style.HasStroke(); got != tt.stroke {
			t.Errorf("%s.HasStroke() = %v, want %v", tt.style, got, tt.stroke)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := XYWH(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", XYWH(5, 5, 10, 10), true},
		{"inside", XYWH(2, 2, 2, 2), true},
		{"touching edge", XYWH(10, 0, 5, 5), false},
		{"apart", XYWH(20, 20, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectScaleAndRoundOut(t *testing.T) {
	r := XYWH(1, 2, 3, 4).Scale(2)
	if r != XYWH(2, 4, 6, 8) {
		t.Errorf("Scale(2) = %v", r)
	}

	got := XYWH(0.5, -1.25, 2, 1).RoundOut()
	want := XYWH(0, -2, 3, 2)
	if got != want {
		t.Errorf("RoundOut() = %v, want %v", got, want)
	}

	if !XYWH(0, 0, 10, 10).ContainsRect(XYWH(0, 0, 10, 10)) {
		t.Error("rect should contain itself")
	}
	if XYWH(0, 0, 10, 10).ContainsRect(XYWH(5, 5, 6, 1)) {
		t.Error("rect should not contain overhanging rect")
	}
}
