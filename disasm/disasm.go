// Package disasm is the external disassembler collaborator described
// by the VM's specification: it is not part of the interpreter core,
// but it is built directly on the core's decode table so that its
// output always tracks the instruction set the Machine executes.
package disasm

import (
	"fmt"
	"strings"

	"synacorvm/synacor"
)

// Line is one disassembled instruction: the address it was decoded
// from, its raw word sequence, and its rendered mnemonic form.
type Line struct {
	Address synacor.Address
	Words   []uint16
	Text    string
}

// Disassemble decodes words as a sequence of instructions starting at
// memory address 0, stopping at the first decode error (unknown
// opcode or malformed operand) and returning the lines decoded so
// far alongside that error. A clean run to the end of words returns a
// nil error.
func Disassemble(words []uint16) ([]Line, error) {
	var lines []Line
	addr := synacor.Address(0)

	for int(addr) < len(words) {
		op := synacor.Opcode(words[addr])
		n, ok := synacor.ArgCount(op)
		if !ok {
			return lines, fmt.Errorf("disasm: unknown opcode %d at %d", words[addr], addr)
		}
		if int(addr)+1+n > len(words) {
			return lines, fmt.Errorf("disasm: truncated instruction at %d", addr)
		}

		seq := words[addr : int(addr)+1+n]
		instr, err := synacor.Decode(seq)
		if err != nil {
			return lines, fmt.Errorf("disasm: %w at %d", err, addr)
		}

		lines = append(lines, Line{
			Address: addr,
			Words:   append([]uint16{}, seq...),
			Text:    render(addr, instr),
		})

		addr += synacor.Address(1 + n)
	}

	return lines, nil
}

func render(addr synacor.Address, instr synacor.Instruction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%05d: %s", addr, strings.ToUpper(instr.Op.String()))

	switch instr.Op {
	case synacor.OpHalt, synacor.OpRet, synacor.OpNoop:
		// no operands

	case synacor.OpSet, synacor.OpNot, synacor.OpRmem:
		fmt.Fprintf(&b, " r%d, %s", instr.Reg, instr.A)

	case synacor.OpPush, synacor.OpJmp, synacor.OpCall, synacor.OpOut, synacor.OpIn:
		fmt.Fprintf(&b, " %s", instr.A)

	case synacor.OpPop:
		fmt.Fprintf(&b, " r%d", instr.Reg)

	case synacor.OpEq, synacor.OpGt, synacor.OpAdd, synacor.OpMult,
		synacor.OpMod, synacor.OpAnd, synacor.OpOr:
		fmt.Fprintf(&b, " r%d, %s, %s", instr.Reg, instr.A, instr.B)

	case synacor.OpJt, synacor.OpJf, synacor.OpWmem:
		fmt.Fprintf(&b, " %s, %s", instr.A, instr.B)
	}

	return b.String()
}
