package footprint

import "testing"

func TestSpanWidth(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want int
	}{
		{"single pixel", Span{Y: 0, X0: 5, X1: 5}, 1},
		{"normal run", Span{Y: 3, X0: 2, X1: 9}, 8},
		{"negative coordinates", Span{Y: -1, X0: -4, X1: -2}, 3},
		{"inverted span is empty", Span{Y: 0, X0: 3, X1: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Width(); got != tt.want {
				t.Errorf("Width: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Y: 5, X0: 2, X1: 8}

	for x := 2; x <= 8; x++ {
		if !s.Contains(x) {
			t.Errorf("Contains(%d) = false, want true", x)
		}
	}
	if s.Contains(1) || s.Contains(9) {
		t.Error("Contains accepted a column outside the span")
	}
	if !s.ContainsPoint(5, 5) {
		t.Error("ContainsPoint(5,5) = false, want true")
	}
	if s.ContainsPoint(5, 4) {
		t.Error("ContainsPoint accepted the wrong row")
	}
}

func TestSpanShifted(t *testing.T) {
	s := Span{Y: 5, X0: 2, X1: 8}
	got := s.Shifted(10, -3)
	want := Span{Y: 2, X0: 12, X1: 18}
	if got != want {
		t.Errorf("Shifted: got %v, want %v", got, want)
	}
	if s != (Span{Y: 5, X0: 2, X1: 8}) {
		t.Error("Shifted mutated the receiver")
	}
}

func TestSpanLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"row dominates", Span{Y: 1, X0: 9, X1: 9}, Span{Y: 2, X0: 0, X1: 0}, true},
		{"x0 breaks row ties", Span{Y: 1, X0: 2, X1: 9}, Span{Y: 1, X0: 3, X1: 4}, true},
		{"x1 breaks x0 ties", Span{Y: 1, X0: 2, X1: 3}, Span{Y: 1, X0: 2, X1: 5}, true},
		{"equal spans", Span{Y: 1, X0: 2, X1: 3}, Span{Y: 1, X0: 2, X1: 3}, false},
		{"reversed", Span{Y: 2, X0: 0, X1: 0}, Span{Y: 1, X0: 9, X1: 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
