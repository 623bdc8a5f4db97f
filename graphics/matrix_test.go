package graphics

import "testing"

func TestMatrixMulIdentity(t *testing.T) {
	m := Matrix{2, 0, 0, 2, 5, 5}
	got := Identity.Mul(m)
	if got != m {
		t.Errorf("Identity.Mul(m) = %v, want %v", got, m)
	}
	got = m.Mul(Identity)
	if got != m {
		t.Errorf("m.Mul(Identity) = %v, want %v", got, m)
	}
}

func TestMatrixApplyTranslation(t *testing.T) {
	m := Matrix{1, 0, 0, 1, 10, 20}
	x, y := m.Apply(1, 2)
	if x != 11 || y != 22 {
		t.Errorf("Apply(1,2) = (%v, %v), want (11, 22)", x, y)
	}
}

func TestMatrixApplyDirectionIgnoresTranslation(t *testing.T) {
	m := Matrix{1, 0, 0, 1, 10, 20}
	dx, dy := m.ApplyDirection(1, 2)
	if dx != 1 || dy != 2 {
		t.Errorf("ApplyDirection(1,2) = (%v, %v), want (1, 2)", dx, dy)
	}
}

func TestMatrixMulScaleThenTranslate(t *testing.T) {
	scale := Matrix{2, 0, 0, 2, 0, 0}
	translate := Matrix{1, 0, 0, 1, 3, 4}
	m := scale.Mul(translate)
	x, y := m.Apply(1, 1)
	if x != 5 || y != 6 {
		t.Errorf("Apply(1,1) = (%v, %v), want (5, 6)", x, y)
	}
}
