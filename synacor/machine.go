package synacor

import (
	"bufio"
	"io"
	"os"
)

// MemorySize is the number of addressable memory cells.
const MemorySize = Modulus

// RunState is the machine's coarse execution state.
type RunState int

const (
	// Halted is the initial state and the state reached after HALT,
	// a RET on an empty stack, or any surfaced error.
	Halted RunState = iota
	// Running is the state while step() is being called in a loop.
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "halted"
}

// Machine owns the full state of one Synacor Challenge VM: memory,
// registers, the value stack, the instruction pointer, and its
// run state. A Machine is not safe for concurrent use from multiple
// goroutines, but two independent Machines never interfere with each
// other provided they don't share stdin/stdout.
type Machine struct {
	memory    [MemorySize]Word
	registers [NumRegisters]Word
	stack     []uint16
	ip        Address
	runState  RunState

	in  *bufio.Reader
	out io.Writer

	// allowAnyByteOut relaxes OUT's ASCII-only check to accept any
	// low 8 bits, per the --ascii-out=false CLI flag.
	allowAnyByteOut bool
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithInput overrides the byte stream IN reads from. Default os.Stdin.
func WithInput(r io.Reader) Option {
	return func(m *Machine) { m.in = bufio.NewReader(r) }
}

// WithOutput overrides the byte stream OUT writes to. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) { m.out = w }
}

// WithAnyByteOut relaxes OUT's ASCII-only check to accept any low 8
// bits instead of failing on values > 127.
func WithAnyByteOut(allow bool) Option {
	return func(m *Machine) { m.allowAnyByteOut = allow }
}

// NewMachine returns a zero-initialized, halted Machine: all memory
// and registers at 0, an empty stack, IP at 0.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IP returns the machine's current instruction pointer.
func (m *Machine) IP() Address { return m.ip }

// RunState returns the machine's current run state.
func (m *Machine) RunState() RunState { return m.runState }

// Register returns the current value of register idx.
func (m *Machine) Register(idx int) Word { return m.registers[idx] }

// Stack returns a copy of the current stack, bottom first.
func (m *Machine) Stack() []uint16 {
	cp := make([]uint16, len(m.stack))
	copy(cp, m.stack)
	return cp
}

// ReadMemory returns the cell at addr. It fails with
// InvalidMemoryAccess if addr does not address a memory cell.
func (m *Machine) ReadMemory(addr Address) (Word, error) {
	if !addr.IsMemory() {
		return 0, &InvalidMemoryAccess{Address: addr}
	}
	return m.memory[addr], nil
}

// WriteMemory stores v at addr. It fails with InvalidMemoryAccess if
// addr does not address a memory cell — the backing store has no
// cells past 32767, so a register-class or invalid address is
// rejected the same way.
func (m *Machine) WriteMemory(addr Address, v Word) error {
	if !addr.IsMemory() {
		return &InvalidMemoryAccess{Address: addr}
	}
	m.memory[addr] = v
	return nil
}

// LoadProgram writes words into consecutive memory cells starting at
// offset. Writing past the last memory cell is a fatal loader error.
func (m *Machine) LoadProgram(offset Address, words []uint16) error {
	addr := offset
	for _, w := range words {
		if !addr.IsMemory() {
			return &InvalidMemoryAccess{Address: addr}
		}
		m.memory[addr] = Word(w)
		addr++
	}
	return nil
}

// Run sets the machine running from startIP and calls Step in a loop
// until it leaves the Running state, returning the first error
// encountered (nil on a clean HALT).
func (m *Machine) Run(startIP Address) error {
	m.ip = startIP
	m.runState = Running
	for m.runState == Running {
		if err := m.Step(); err != nil {
			m.runState = Halted
			return err
		}
	}
	return nil
}

// Step performs a single fetch-decode-execute cycle: it reads the
// opcode at IP, reads its arguments, decodes an Instruction, and
// executes it. It is the public entry point for single-stepping the
// machine under test.
func (m *Machine) Step() error {
	// Crossing past the last memory cell is an access error on the
	// fetch that discovers it, not on the increment that produced it.
	if !m.ip.IsMemory() {
		return &InvalidMemoryAccess{Address: m.ip}
	}
	opcodeWord := uint16(m.memory[m.ip])
	m.ip++

	op := Opcode(opcodeWord)
	n, ok := ArgCount(op)
	if !ok {
		return &BadOpcode{Word: opcodeWord, IP: m.ip}
	}

	words := make([]uint16, n+1)
	words[0] = opcodeWord
	for i := 0; i < n; i++ {
		if !m.ip.IsMemory() {
			return &BadOpcode{Word: opcodeWord, IP: m.ip}
		}
		words[i+1] = uint16(m.memory[m.ip])
		m.ip++
	}

	instr, err := Decode(words)
	if err != nil {
		return err
	}

	return m.execute(instr)
}

func (m *Machine) push(v uint16) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() (uint16, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	idx := len(m.stack) - 1
	v := m.stack[idx]
	m.stack = m.stack[:idx]
	return v, true
}

func (m *Machine) writeResult(reg int, v Word) {
	m.registers[reg] = v
}

func (m *Machine) jump(target Word) error {
	addr := Address(target)
	if !addr.IsMemory() {
		return &JumpOutOfBounds{Address: addr}
	}
	m.ip = addr
	return nil
}

func (m *Machine) resolve(o Operand) Word {
	return o.Resolve(m.registers)
}

func (m *Machine) execute(instr Instruction) error {
	switch instr.Op {
	case OpHalt:
		m.runState = Halted
		return nil

	case OpSet:
		m.writeResult(instr.Reg, m.resolve(instr.A))
		return nil

	case OpPush:
		m.push(uint16(m.resolve(instr.A)))
		return nil

	case OpPop:
		v, ok := m.pop()
		if !ok {
			return &StackUnderflow{}
		}
		m.writeResult(instr.Reg, Word(v))
		return nil

	case OpEq:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		m.writeResult(instr.Reg, boolWord(a == b))
		return nil

	case OpGt:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		m.writeResult(instr.Reg, boolWord(a > b))
		return nil

	case OpJmp:
		return m.jump(m.resolve(instr.A))

	case OpJt:
		if m.resolve(instr.A) != 0 {
			return m.jump(m.resolve(instr.B))
		}
		return nil

	case OpJf:
		if m.resolve(instr.A) == 0 {
			return m.jump(m.resolve(instr.B))
		}
		return nil

	case OpAdd:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		m.writeResult(instr.Reg, a.Add(b))
		return nil

	case OpMult:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		m.writeResult(instr.Reg, a.Mul(b))
		return nil

	case OpMod:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		r, err := a.Mod(b)
		if err != nil {
			return err
		}
		m.writeResult(instr.Reg, r)
		return nil

	case OpAnd:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		m.writeResult(instr.Reg, a.And(b))
		return nil

	case OpOr:
		a, b := m.resolve(instr.A), m.resolve(instr.B)
		m.writeResult(instr.Reg, a.Or(b))
		return nil

	case OpNot:
		m.writeResult(instr.Reg, m.resolve(instr.A).Not())
		return nil

	case OpRmem:
		addr := Address(m.resolve(instr.A))
		v, err := m.ReadMemory(addr)
		if err != nil {
			return err
		}
		m.writeResult(instr.Reg, v)
		return nil

	case OpWmem:
		addr := Address(m.resolve(instr.A))
		return m.WriteMemory(addr, m.resolve(instr.B))

	case OpCall:
		next := uint16(m.ip)
		target := m.resolve(instr.A)
		if err := m.jump(target); err != nil {
			return err
		}
		m.push(next)
		return nil

	case OpRet:
		v, ok := m.pop()
		if !ok {
			m.runState = Halted
			return nil
		}
		return m.jump(Word(v))

	case OpOut:
		v := m.resolve(instr.A)
		if v > 127 && !m.allowAnyByteOut {
			return &InvalidCharacterArgument{Operand: instr.A, Value: v}
		}
		_, err := m.out.Write([]byte{byte(v)})
		return err

	case OpIn:
		b, err := m.in.ReadByte()
		if err == io.EOF {
			m.runState = Halted
			return nil
		}
		if err != nil {
			return err
		}
		addr := Address(instr.A.Encode())
		if idx, ok := addr.RegisterIndex(); ok {
			m.writeResult(idx, Word(b))
			return nil
		}
		return m.WriteMemory(addr, Word(b))

	case OpNoop:
		return nil

	default:
		return &BadOpcode{Word: uint16(instr.Op)}
	}
}

func boolWord(b bool) Word {
	if b {
		return 1
	}
	return 0
}
