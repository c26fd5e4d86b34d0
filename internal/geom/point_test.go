package geom

import "testing"

func TestPoint_Dimensions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		expected int
	}{
		{
			name:     "positive",
			p:        New([]float64{1, 2, 3, 4}),
			expected: 4,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cmp := test.p.Dimensions()
			if cmp != test.expected {
				t.Errorf("the comparison is incorrect got: %v, expected: %v", cmp, test.expected)
			}
		})
	}
}

func TestPoint_Equal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected bool
	}{
		{
			name:     "positive",
			p:        Point{10, 10},
			p1:       Point{10, 10},
			expected: true,
		},
		{
			name:     "negative",
			p:        Point{10, 10},
			p1:       Point{11, 10},
			expected: false,
		},
		{
			name:     "negative",
			p:        Point{10, 10},
			p1:       Point{10},
			expected: false,
		},
	}
	for _, test := range tests {
		if test.p.Equal(test.p1) != test.expected {
			t.Errorf("the comparison of points, got: %v, expected: %v", test.p.Equal(test.p1), test.expected)
		}
	}
}

func TestPoint_Copy(t *testing.T) {
	t.Parallel()
	p := New([]float64{5.1, 3.5, 1.4, 0.2})
	p1 := p.Copy()
	if !p.Equal(p1) {
		t.Fatalf("the copy must be equal to the source, got: %v, expected: %v", p1, p)
	}
	p1[0] = 0
	if p[0] != 5.1 {
		t.Errorf("changing the copy must not touch the source, got: %v", p[0])
	}
}

func TestPoint_Map(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		expected Point
	}{
		{name: "positive", p: Point{1, 2, 3, 4}, expected: Point{2, 4, 6, 8}},
		{name: "positive", p: Point{0, 0}, expected: Point{0, 0}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := test.p.Map(func(_ int, value float64) float64 {
				return value * 2
			})
			if !got.Equal(test.expected) {
				t.Errorf("mapping the point, got: %v, expected: %v", got, test.expected)
			}
		})
	}
}
