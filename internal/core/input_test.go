package core

import "testing"

func TestInputFrameDown(t *testing.T) {
	f := NewInputFrame()
	if f.Down(ActionLeft) {
		t.Fatal("empty frame should not report Left down")
	}

	f.Hold(ActionLeft)
	if !f.Down(ActionLeft) {
		t.Error("held action should be down")
	}
	if f.Has(ActionLeft) {
		t.Error("held action should not count as pressed")
	}

	f.Set(ActionRight)
	if !f.Down(ActionRight) || !f.Has(ActionRight) {
		t.Error("pressed action should be both pressed and down")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Hold(ActionRight)
	f.Type('4')
	f.Click(10, 20)

	f.Clear()

	if f.Has(ActionConfirm) || f.Down(ActionRight) {
		t.Error("Clear should drop actions")
	}
	if len(f.Chars) != 0 {
		t.Errorf("Clear left %d chars", len(f.Chars))
	}
	if f.Pointer.Clicked {
		t.Error("Clear should reset the pointer")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) || f.Down(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for i := range 100 {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(7)
	seen := make(map[int]bool)
	for range 1000 {
		v := r.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d", v)
		}
		seen[v] = true

		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v", f)
		}
	}
	if len(seen) != 4 {
		t.Errorf("Intn(4) produced only %d distinct values", len(seen))
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestColorRGBA(t *testing.T) {
	if c := ColorPurple.RGBA(); c.R != 128 || c.G != 0 || c.B != 128 {
		t.Errorf("ColorPurple.RGBA() = %v", c)
	}
	if c := Color(250).RGBA(); c != ColorDefault.RGBA() {
		t.Errorf("unknown color should fall back to default, got %v", c)
	}
}
