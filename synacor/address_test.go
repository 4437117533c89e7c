package synacor

import "testing"

func TestAddressClassification(t *testing.T) {
	cases := []struct {
		addr       Address
		wantMemory bool
		wantReg    bool
		wantValid  bool
	}{
		{0, true, false, true},
		{123, true, false, true},
		{32767, true, false, true},
		{32768, false, true, true},
		{32770, false, true, true},
		{32775, false, true, true},
		{32776, false, false, false},
		{40000, false, false, false},
		{65535, false, false, false},
	}

	for _, c := range cases {
		if got := c.addr.IsMemory(); got != c.wantMemory {
			t.Errorf("Address(%d).IsMemory() = %v, want %v", c.addr, got, c.wantMemory)
		}
		if got := c.addr.IsRegister(); got != c.wantReg {
			t.Errorf("Address(%d).IsRegister() = %v, want %v", c.addr, got, c.wantReg)
		}
		if got := c.addr.IsValid(); got != c.wantValid {
			t.Errorf("Address(%d).IsValid() = %v, want %v", c.addr, got, c.wantValid)
		}
		if got := c.addr.IsInvalid(); got == c.wantValid {
			t.Errorf("Address(%d).IsInvalid() = %v, want %v", c.addr, got, !c.wantValid)
		}
	}
}

func TestAddressRegisterIndex(t *testing.T) {
	idx, ok := Address(32770).RegisterIndex()
	if !ok || idx != 2 {
		t.Fatalf("RegisterIndex(32770) = (%d, %v), want (2, true)", idx, ok)
	}

	if _, ok := Address(123).RegisterIndex(); ok {
		t.Fatalf("RegisterIndex(123) should not be a register")
	}
}
