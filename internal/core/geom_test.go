package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(0, 0, 20, 20),
			b:        BoxAt(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := BoxAt(10, 20, 40, 30).Inset(Insets{Left: 4, Right: 6, Top: 2, Bottom: 8})

	if b.Left != 14 || b.Right != 44 || b.Top != 22 || b.Bottom != 42 {
		t.Errorf("Inset() = %+v, unexpected edges", b)
	}
	if b.Width() != 30 {
		t.Errorf("Width() = %f, expected 30", b.Width())
	}
	if b.Height() != 20 {
		t.Errorf("Height() = %f, expected 20", b.Height())
	}
}

func TestInsetNeverGrows(t *testing.T) {
	visual := BoxAt(0, 0, 50, 50)
	hit := visual.Inset(Uniform(4))

	if hit.Left < visual.Left || hit.Right > visual.Right || hit.Top < visual.Top || hit.Bottom > visual.Bottom {
		t.Errorf("inset box %+v escapes visual box %+v", hit, visual)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
