package fixed

import "testing"

func TestClipIntP2(t *testing.T) {
	cases := []struct {
		a    int32
		p    uint
		want int32
	}{
		{0, 23, 0},
		{1<<23 - 1, 23, 1<<23 - 1},
		{1 << 23, 23, 1<<23 - 1},
		{-(1 << 23), 23, -(1 << 23)},
		{-(1 << 23) - 1, 23, -(1 << 23)},
		{1 << 30, 23, 1<<23 - 1},
		{-(1 << 30), 23, -(1 << 23)},
	}
	for _, c := range cases {
		if got := ClipIntP2(c.a, c.p); got != c.want {
			t.Errorf("ClipIntP2(%d, %d) = %d, want %d", c.a, c.p, got, c.want)
		}
	}
}

func TestClip(t *testing.T) {
	if got := Clip(5, 0, 10); got != 5 {
		t.Errorf("Clip(5,0,10) = %d, want 5", got)
	}
	if got := Clip(-5, 0, 10); got != 0 {
		t.Errorf("Clip(-5,0,10) = %d, want 0", got)
	}
	if got := Clip(15, 0, 10); got != 10 {
		t.Errorf("Clip(15,0,10) = %d, want 10", got)
	}
}

func TestSignExtend(t *testing.T) {
	if got := SignExtend(0x7F, 7); got != -1 {
		t.Errorf("SignExtend(0x7F,7) = %d, want -1", got)
	}
	if got := SignExtend(0x3F, 7); got != 63 {
		t.Errorf("SignExtend(0x3F,7) = %d, want 63", got)
	}
	if got := SignExtend(0x40, 7); got != -64 {
		t.Errorf("SignExtend(0x40,7) = %d, want -64", got)
	}
}

func TestRshift32RoundsTiesToEven(t *testing.T) {
	// value=4, shift=3: rounding=4, (4+4)>>3=1, mask=15, value&mask=4==rounding -> 1-1=0
	if got := Rshift32(4, 3); got != 0 {
		t.Errorf("Rshift32(4,3) = %d, want 0", got)
	}
	// value=5, shift=3: (5+4)>>3=1, mask=15, 5&15=5 != 4 -> stays 1
	if got := Rshift32(5, 3); got != 1 {
		t.Errorf("Rshift32(5,3) = %d, want 1", got)
	}
	// value=12, shift=3: rounding=4, (12+4)>>3=2, mask=15, 12&15=12 != 4 -> stays 2 (1.5 rounds to even 2)
	if got := Rshift32(12, 3); got != 2 {
		t.Errorf("Rshift32(12,3) = %d, want 2", got)
	}
}

func TestRshift64Clip24Saturates(t *testing.T) {
	big := int64(1) << 40
	if got := Rshift64Clip24(big, 1); got != 1<<23-1 {
		t.Errorf("Rshift64Clip24(2^40,1) = %d, want %d", got, 1<<23-1)
	}
}
