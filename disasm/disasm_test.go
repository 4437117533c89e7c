package disasm

import (
	"strings"
	"testing"

	"synacorvm/synacor"
)

func TestDisassembleCanonicalExample(t *testing.T) {
	words := []uint16{9, 32768, 32769, 4, 19, 32768}
	lines, err := Disassemble(words)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Disassemble: got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0].Text, "ADD") {
		t.Fatalf("line 0 = %q, want ADD mnemonic", lines[0].Text)
	}
	if !strings.Contains(lines[1].Text, "OUT") {
		t.Fatalf("line 1 = %q, want OUT mnemonic", lines[1].Text)
	}
	if lines[1].Address != 4 {
		t.Fatalf("line 1 address = %d, want 4", lines[1].Address)
	}
}

func TestDisassembleStopsAtUnknownOpcode(t *testing.T) {
	words := []uint16{uint16(synacor.OpHalt), 22}
	lines, err := Disassemble(words)
	if err == nil {
		t.Fatalf("Disassemble: expected error at unknown opcode")
	}
	if len(lines) != 1 {
		t.Fatalf("Disassemble: got %d lines before error, want 1", len(lines))
	}
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	words := []uint16{uint16(synacor.OpAdd), uint16(synacor.RegisterBase)}
	_, err := Disassemble(words)
	if err == nil {
		t.Fatalf("Disassemble: expected error on truncated instruction")
	}
}
