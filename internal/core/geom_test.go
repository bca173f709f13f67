package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false},
		{2, 5, false},
		{1, 3, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := NewRect(0, 0, 10, 6).Center()
	if cx != 5 || cy != 3 {
		t.Errorf("Center() = (%d,%d), want (5,3)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(1, 1, 8, 6).Inset(2)
	if r != (Rect{X: 3, Y: 3, W: 4, H: 2}) {
		t.Errorf("Inset(2) = %+v", r)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15,0,10) = %d", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs misbehaves")
	}
}
