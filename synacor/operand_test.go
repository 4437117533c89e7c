package synacor

import "testing"

func TestNewOperandLiteral(t *testing.T) {
	o, ok := NewOperand(123)
	if !ok {
		t.Fatalf("NewOperand(123) rejected")
	}
	if o.IsRegister() {
		t.Fatalf("NewOperand(123) classified as register")
	}
	regs := [NumRegisters]Word{}
	if got := o.Resolve(regs); got != 123 {
		t.Fatalf("Resolve() = %d, want 123", got)
	}
}

func TestNewOperandRegister(t *testing.T) {
	o, ok := NewOperand(uint16(RegisterBase))
	if !ok {
		t.Fatalf("NewOperand(RegisterBase) rejected")
	}
	idx, ok := o.RegisterIndex()
	if !ok || idx != 0 {
		t.Fatalf("RegisterIndex() = (%d, %v), want (0, true)", idx, ok)
	}

	regs := [NumRegisters]Word{}
	regs[0] = 42
	if got := o.Resolve(regs); got != 42 {
		t.Fatalf("Resolve() = %d, want 42", got)
	}
}

func TestNewOperandMalformedRejected(t *testing.T) {
	if _, ok := NewOperand(uint16(RegisterTop) + 1); ok {
		t.Fatalf("NewOperand(RegisterTop+1) should be rejected as malformed")
	}
	if _, ok := NewOperand(65535); ok {
		t.Fatalf("NewOperand(65535) should be rejected as malformed")
	}
}

func TestOperandEncodeRoundTrip(t *testing.T) {
	for _, raw := range []uint16{0, 1, 32767, uint16(RegisterBase), uint16(RegisterTop)} {
		o, ok := NewOperand(raw)
		if !ok {
			t.Fatalf("NewOperand(%d) rejected", raw)
		}
		if got := o.Encode(); got != raw {
			t.Fatalf("Encode() = %d, want %d", got, raw)
		}
	}
}
