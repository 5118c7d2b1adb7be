package cpu

import "testing"

func TestRegister16_HighLow(t *testing.T) {
	var r Register16
	r.set(0xABCD)

	if got := r.getHigh(); got != 0xAB {
		t.Errorf("getHigh() = 0x%02X, want 0xAB", got)
	}
	if got := r.getLow(); got != 0xCD {
		t.Errorf("getLow() = 0x%02X, want 0xCD", got)
	}

	r.setHigh(0x12)
	if got := r.get(); got != 0x12CD {
		t.Errorf("after setHigh, get() = 0x%04X, want 0x12CD", got)
	}

	r.setLow(0x34)
	if got := r.get(); got != 0x1234 {
		t.Errorf("after setLow, get() = 0x%04X, want 0x1234", got)
	}
}

func TestRegister16_IncrDecr(t *testing.T) {
	var r Register16
	r.set(0xFFFF)
	r.incr()
	if got := r.get(); got != 0x0000 {
		t.Errorf("incr() wrapped to 0x%04X, want 0x0000", got)
	}

	r.decr()
	if got := r.get(); got != 0xFFFF {
		t.Errorf("decr() wrapped to 0x%04X, want 0xFFFF", got)
	}
}

func TestCPU_FlagRoundTrip(t *testing.T) {
	c, _ := newTestCPU(nil)

	for _, f := range []Flag{FlagZ, FlagN, FlagH, FlagC} {
		c.setFlag(f, true)
		if !c.flag(f) {
			t.Errorf("flag %v not set after setFlag(true)", f)
		}
		c.setFlag(f, false)
		if c.flag(f) {
			t.Errorf("flag %v still set after setFlag(false)", f)
		}
	}
}

func TestCPU_SetFlagClearsLowNibble(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.af.setLow(0xFF)
	c.setFlag(FlagZ, true)

	if got := c.af.getLow(); got&0x0F != 0 {
		t.Errorf("F register low nibble = 0x%X, want 0", got&0x0F)
	}
}
