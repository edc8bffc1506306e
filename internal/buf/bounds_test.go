package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if prod, ok := MulOverflowSafe(64, 4); !ok || prod != 256 {
		t.Fatalf("MulOverflowSafe(64,4)=%d,%v want 256,true", prod, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow for MaxInt/2*3")
	}
	if prod, ok := MulOverflowSafe(0, math.MaxInt); !ok || prod != 0 {
		t.Fatalf("zero times anything should be 0, true")
	}
}

func TestCheckElementBounds(t *testing.T) {
	end, err := CheckElementBounds(256, 4, 31, 4)
	if err != nil {
		t.Fatalf("CheckElementBounds: %v", err)
	}
	if end != 128 {
		t.Fatalf("end offset: got %d, want 128", end)
	}
	if _, err := CheckElementBounds(128, 4, 32, 4); err == nil {
		t.Fatalf("expected bounds error when elements exceed buffer")
	}
	if _, err := CheckElementBounds(128, 0, math.MaxInt, 4); err == nil {
		t.Fatalf("expected overflow error for huge count")
	}
	if _, err := CheckElementBounds(128, -1, 1, 4); err == nil {
		t.Fatalf("expected error for negative offset")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
}
