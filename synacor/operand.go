package synacor

import "strconv"

// Operand is the decoded form of an instruction argument: either a
// literal Word or a reference to one of the eight registers.
type Operand struct {
	isRegister bool
	literal    Word
	register   int
}

// NewOperand classifies a raw encoded word as a Literal or a
// RegisterRef. A value at or above RegisterTop+1 (32776) is
// malformed and rejected.
func NewOperand(raw uint16) (Operand, bool) {
	if raw <= uint16(MaxWord) {
		return Operand{literal: Word(raw)}, true
	}
	if idx, ok := Address(raw).RegisterIndex(); ok {
		return Operand{isRegister: true, register: idx}, true
	}
	return Operand{}, false
}

// Literal builds an Operand that carries a literal Word directly,
// bypassing the encoded-word classification, for constructing
// instructions programmatically.
func Literal(w Word) Operand {
	return Operand{literal: w}
}

// RegisterRef builds an Operand referring to register index idx.
func RegisterRef(idx int) Operand {
	return Operand{isRegister: true, register: idx}
}

// IsRegister reports whether the operand refers to a register.
func (o Operand) IsRegister() bool { return o.isRegister }

// RegisterIndex returns the referenced register index and true, or
// (0, false) if the operand is a literal.
func (o Operand) RegisterIndex() (int, bool) {
	if !o.isRegister {
		return 0, false
	}
	return o.register, true
}

// Resolve returns the Operand's value: the literal itself, or the
// current contents of the referenced register. This is the only
// place register indirection happens.
func (o Operand) Resolve(registers [NumRegisters]Word) Word {
	if o.isRegister {
		return registers[o.register]
	}
	return o.literal
}

// Encode returns the raw 16-bit word this operand decodes from.
func (o Operand) Encode() uint16 {
	if o.isRegister {
		return uint16(RegisterBase) + uint16(o.register)
	}
	return uint16(o.literal)
}

// String renders the operand the way the disassembler does: "rN" for
// a register reference, the decimal value otherwise.
func (o Operand) String() string {
	if o.isRegister {
		return registerName(o.register)
	}
	return strconv.Itoa(int(o.literal))
}
