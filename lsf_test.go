package uodecode

import "testing"

func TestLSFToLPCAlwaysSetsLeadingOne(t *testing.T) {
	cases := [][lsfOrder]float64{
		{},
		{0.1, -0.2, 0.3, -0.4, 0.5, -0.6, 0.7, -0.8, 0.9, -0.1},
		{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	for _, lsf := range cases {
		lpc := lsfToLPC(lsf)
		if lpc[0] != 1 {
			t.Fatalf("lpc[0] = %v, want 1 for input %v", lpc[0], lsf)
		}
	}
}

func TestLSFToLPCIsDeterministic(t *testing.T) {
	lsf := [lsfOrder]float64{0.05, 0.12, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	a := lsfToLPC(lsf)
	b := lsfToLPC(lsf)
	if a != b {
		t.Fatalf("lsfToLPC is not referentially transparent: %v != %v", a, b)
	}
}

func TestInterpolateLSFBoundaryRatios(t *testing.T) {
	prev := [lsfOrder]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	cur := [lsfOrder]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	// subframe 0: new_ratio = 0.25
	out0 := interpolateLSF(prev, cur, 0)
	for i, v := range out0 {
		if want := 0.75; v != want {
			t.Fatalf("subframe 0, index %d = %v, want %v", i, v, want)
		}
	}

	// subframe 3: new_ratio = 1.0, result equals cur exactly
	out3 := interpolateLSF(prev, cur, 3)
	if out3 != cur {
		t.Fatalf("subframe 3 interpolation = %v, want %v", out3, cur)
	}
}

func TestSubframeLPCBypassesInterpolationBeforeFirstFrame(t *testing.T) {
	d := NewDecoder()
	lsf := [lsfOrder]float64{0.05, 0.12, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

	want := lsfToLPC(lsf)
	for s := 0; s < numSubframes; s++ {
		got := d.subframeLPC(lsf, s)
		if got != want {
			t.Fatalf("subframe %d: interpolation not bypassed before the first frame: got %v, want %v", s, got, want)
		}
	}
}
