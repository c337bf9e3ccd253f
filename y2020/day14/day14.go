// Package day14 emulates the ferry docking program's bitmask memory system.
package day14

import (
	"regexp"
	"strconv"

	"github.com/mikepurvis/advent-of-code/internal/combin"
	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 14, Title: "Docking Data", Solve: solve}

// Width is the number of bits in a value or address.
const Width = 36

// Mask is a parsed "mask = ..." line. Floating has a bit set for every X;
// Ones for every 1.
type Mask struct {
	Floating uint64
	Ones     uint64
}

// Instr is either a mask update or a memory write.
type Instr struct {
	SetMask bool
	Mask    Mask
	Addr    uint64
	Value   uint64
}

var (
	maskPattern = regexp.MustCompile(`^mask = ([01X]{36})$`)
	memPattern  = regexp.MustCompile(`^mem\[([0-9]+)\] = ([0-9]+)$`)
)

// ParseMask reads a mask of 36 '0', '1' or 'X' characters, most significant
// first.
func ParseMask(s string) Mask {
	var m Mask
	for _, c := range []byte(s) {
		m.Floating <<= 1
		m.Ones <<= 1
		switch c {
		case 'X':
			m.Floating |= 1
		case '1':
			m.Ones |= 1
		}
	}
	return m
}

// Parse reads the program.
func Parse(lines []input.Line) ([]Instr, error) {
	prog := make([]Instr, 0, len(lines))
	for _, line := range lines {
		if m := maskPattern.FindStringSubmatch(line.Text); m != nil {
			prog = append(prog, Instr{SetMask: true, Mask: ParseMask(m[1])})
			continue
		}
		m := memPattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil, line.Errorf("unrecognized instruction")
		}
		addr, err := strconv.ParseUint(m[1], 10, Width)
		if err != nil {
			return nil, line.Errorf("invalid address %q", m[1])
		}
		value, err := strconv.ParseUint(m[2], 10, Width)
		if err != nil {
			return nil, line.Errorf("invalid value %q", m[2])
		}
		prog = append(prog, Instr{Addr: addr, Value: value})
	}
	return prog, nil
}

// Memory is a sparse address space.
type Memory map[uint64]uint64

// Sum adds up every stored value.
func (mem Memory) Sum() (sum uint64) {
	for _, v := range mem {
		sum += v
	}
	return sum
}

// Decoder applies a mask to one memory write.
type Decoder func(mem Memory, mask Mask, addr, value uint64)

// DecodeValue is the version 1 chip: the mask overwrites bits of the value.
func DecodeValue(mem Memory, mask Mask, addr, value uint64) {
	mem[addr] = value&mask.Floating | mask.Ones
}

// DecodeAddress is the version 2 chip: the mask sets address bits, and every
// floating bit takes both values.
func DecodeAddress(mem Memory, mask Mask, addr, value uint64) {
	var bits []uint64
	for i := range Width {
		if bit := uint64(1) << i; mask.Floating&bit != 0 {
			bits = append(bits, bit)
		}
	}
	base := addr&^mask.Floating | mask.Ones
	combin.Subsets(bits, func(set []uint64) {
		a := base
		for _, bit := range set {
			a |= bit
		}
		mem[a] = value
	})
}

// Execute runs prog through decode, starting with an all-floating mask.
func Execute(prog []Instr, decode Decoder) Memory {
	mem := make(Memory)
	mask := Mask{Floating: 1<<Width - 1}
	for _, in := range prog {
		if in.SetMask {
			mask = in.Mask
		} else {
			decode(mem, mask, in.Addr, in.Value)
		}
	}
	return mem
}

func solve(run *puzzle.Run) error {
	prog, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	run.Answer("Memory sum v1", Execute(prog, DecodeValue).Sum())
	run.Answer("Memory sum v2", Execute(prog, DecodeAddress).Sum())
	return nil
}
