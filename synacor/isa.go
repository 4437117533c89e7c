package synacor

import "fmt"

// NumRegisters is the number of general-purpose registers.
const NumRegisters = 8

// Opcode identifies one of the 22 machine instructions.
type Opcode uint16

const (
	OpHalt Opcode = iota
	OpSet
	OpPush
	OpPop
	OpEq
	OpGt
	OpJmp
	OpJt
	OpJf
	OpAdd
	OpMult
	OpMod
	OpAnd
	OpOr
	OpNot
	OpRmem
	OpWmem
	OpCall
	OpRet
	OpOut
	OpIn
	OpNoop
)

var opcodeNames = [...]string{
	OpHalt: "halt", OpSet: "set", OpPush: "push", OpPop: "pop",
	OpEq: "eq", OpGt: "gt", OpJmp: "jmp", OpJt: "jt", OpJf: "jf",
	OpAdd: "add", OpMult: "mult", OpMod: "mod", OpAnd: "and", OpOr: "or",
	OpNot: "not", OpRmem: "rmem", OpWmem: "wmem", OpCall: "call",
	OpRet: "ret", OpOut: "out", OpIn: "in", OpNoop: "noop",
}

func (o Opcode) String() string {
	if int(o) < len(opcodeNames) {
		return opcodeNames[o]
	}
	return fmt.Sprintf("opcode(%d)", uint16(o))
}

// argCounts is the static arity table: the number of argument words
// that follow each opcode word. An opcode not present here is
// unknown.
var argCounts = [...]int{
	OpHalt: 0, OpSet: 2, OpPush: 1, OpPop: 1, OpEq: 3, OpGt: 3,
	OpJmp: 1, OpJt: 2, OpJf: 2, OpAdd: 3, OpMult: 3, OpMod: 3,
	OpAnd: 3, OpOr: 3, OpNot: 2, OpRmem: 2, OpWmem: 2, OpCall: 1,
	OpRet: 0, OpOut: 1, OpIn: 1, OpNoop: 0,
}

// ArgCount returns the number of argument words for op and true, or
// (0, false) if op does not name one of the 22 known instructions.
func ArgCount(op Opcode) (int, bool) {
	if uint16(op) >= uint16(len(argCounts)) {
		return 0, false
	}
	return argCounts[op], true
}

func registerName(idx int) string {
	return fmt.Sprintf("r%d", idx)
}

// Instruction is a decoded machine instruction. Only the fields
// relevant to Op's shape are populated: Reg holds the destination
// register for opcodes that write one (SET, POP, EQ, GT, ADD, MULT,
// MOD, AND, OR, NOT, RMEM); A and B hold up to two operand arguments
// in encoded order. Unused fields take their zero value.
type Instruction struct {
	Op  Opcode
	Reg int
	A   Operand
	B   Operand
}

// regOperand decodes a raw word that must be a register reference
// (the "reg" argument shape), rejecting anything else as malformed.
func regOperand(raw uint16) (int, bool) {
	idx, ok := Address(raw).RegisterIndex()
	return idx, ok
}

// Decode builds an Instruction from an opcode word and its argument
// words (words[0] is the opcode, words[1:] its arguments, already
// sliced to the opcode's arity by the caller). It returns
// MalformedInstruction if any argument position holds an illegal
// encoding.
func Decode(words []uint16) (Instruction, error) {
	op := Opcode(words[0])
	args := words[1:]

	malformed := func() error { return &MalformedInstruction{Words: append([]uint16{}, words...)} }

	reg := func(i int) (int, bool) { return regOperand(args[i]) }
	operand := func(i int) (Operand, bool) { return NewOperand(args[i]) }

	switch op {
	case OpHalt, OpRet, OpNoop:
		return Instruction{Op: op}, nil
	case OpSet:
		r, ok := reg(0)
		if !ok {
			return Instruction{}, malformed()
		}
		a, ok := operand(1)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, Reg: r, A: a}, nil
	case OpPush:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a}, nil
	case OpPop:
		r, ok := reg(0)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, Reg: r}, nil
	case OpEq, OpGt, OpAdd, OpMult, OpMod, OpAnd, OpOr:
		r, ok := reg(0)
		if !ok {
			return Instruction{}, malformed()
		}
		a, ok := operand(1)
		if !ok {
			return Instruction{}, malformed()
		}
		b, ok := operand(2)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, Reg: r, A: a, B: b}, nil
	case OpJmp:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a}, nil
	case OpJt, OpJf:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		b, ok := operand(1)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a, B: b}, nil
	case OpNot:
		r, ok := reg(0)
		if !ok {
			return Instruction{}, malformed()
		}
		a, ok := operand(1)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, Reg: r, A: a}, nil
	case OpRmem:
		r, ok := reg(0)
		if !ok {
			return Instruction{}, malformed()
		}
		a, ok := operand(1)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, Reg: r, A: a}, nil
	case OpWmem:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		b, ok := operand(1)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a, B: b}, nil
	case OpCall:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a}, nil
	case OpOut:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a}, nil
	case OpIn:
		a, ok := operand(0)
		if !ok {
			return Instruction{}, malformed()
		}
		return Instruction{Op: op, A: a}, nil
	default:
		return Instruction{}, &BadOpcode{Word: words[0]}
	}
}

// Encode returns the opcode word followed by this instruction's
// argument words, in the order Decode would have read them.
func (i Instruction) Encode() []uint16 {
	switch i.Op {
	case OpHalt, OpRet, OpNoop:
		return []uint16{uint16(i.Op)}
	case OpSet, OpNot, OpRmem:
		return []uint16{uint16(i.Op), uint16(RegisterBase) + uint16(i.Reg), i.A.Encode()}
	case OpPush, OpJmp, OpCall, OpOut, OpIn:
		return []uint16{uint16(i.Op), i.A.Encode()}
	case OpPop:
		return []uint16{uint16(i.Op), uint16(RegisterBase) + uint16(i.Reg)}
	case OpEq, OpGt, OpAdd, OpMult, OpMod, OpAnd, OpOr:
		return []uint16{uint16(i.Op), uint16(RegisterBase) + uint16(i.Reg), i.A.Encode(), i.B.Encode()}
	case OpJt, OpJf, OpWmem:
		return []uint16{uint16(i.Op), i.A.Encode(), i.B.Encode()}
	default:
		return nil
	}
}
