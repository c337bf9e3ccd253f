// Package day08 runs the handheld game console's boot code.
package day08

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikepurvis/advent-of-code/internal/input"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

var Day = puzzle.Day{Year: 2020, Day: 8, Title: "Handheld Halting", Solve: solve}

// Opcode is an instruction operation.
type Opcode uint8

const (
	Nop Opcode = iota
	Acc
	Jmp
)

var opcodeNames = [...]string{Nop: "nop", Acc: "acc", Jmp: "jmp"}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", op)
}

// Instr is an opcode with its signed argument.
type Instr struct {
	Op  Opcode
	Arg int
}

// Program is a sequence of instructions.
type Program []Instr

// Parse reads one "op ±N" instruction per line.
func Parse(lines []input.Line) (Program, error) {
	prog := make(Program, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line.Text)
		if len(fields) != 2 {
			return nil, line.Errorf("expected opcode and argument")
		}
		var in Instr
		switch fields[0] {
		case "nop":
			in.Op = Nop
		case "acc":
			in.Op = Acc
		case "jmp":
			in.Op = Jmp
		default:
			return nil, line.Errorf("unknown opcode %q", fields[0])
		}
		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, line.Errorf("invalid argument %q", fields[1])
		}
		in.Arg = arg
		prog = append(prog, in)
	}
	return prog, nil
}

// ErrLoop is returned when the program would execute an instruction twice.
var ErrLoop = errors.New("infinite loop")

// Machine holds the console's registers.
type Machine struct {
	PC  int
	Acc int
}

// Run executes prog until it terminates by stepping just past its last
// instruction, or until an instruction is about to repeat, returning ErrLoop.
func (m *Machine) Run(prog Program) error {
	seen := make([]bool, len(prog))
	for m.PC != len(prog) {
		if m.PC < 0 || m.PC > len(prog) {
			return fmt.Errorf("jumped out of bounds to %d", m.PC)
		}
		if seen[m.PC] {
			return ErrLoop
		}
		seen[m.PC] = true
		m.step(prog[m.PC])
	}
	return nil
}

func (m *Machine) step(in Instr) {
	switch in.Op {
	case Acc:
		m.Acc += in.Arg
		m.PC++
	case Jmp:
		m.PC += in.Arg
	default:
		m.PC++
	}
}

// Repair finds the single nop/jmp swap that lets prog terminate, returning
// the accumulator at termination.
func Repair(prog Program) (int, error) {
	fixed := append(Program(nil), prog...)
	for i, in := range prog {
		switch in.Op {
		case Nop:
			fixed[i].Op = Jmp
		case Jmp:
			fixed[i].Op = Nop
		default:
			continue
		}
		var m Machine
		err := m.Run(fixed)
		fixed[i] = in
		if err == nil {
			return m.Acc, nil
		}
	}
	return 0, errors.New("no single instruction swap terminates")
}

func solve(run *puzzle.Run) error {
	prog, err := Parse(run.Input.Lines())
	if err != nil {
		return err
	}
	var m Machine
	if err := m.Run(prog); !errors.Is(err, ErrLoop) {
		return fmt.Errorf("expected boot code to loop, got %v", err)
	}
	run.Answer("Accumulator", m.Acc)

	acc, err := Repair(prog)
	if err != nil {
		return err
	}
	run.Answer("Repaired accumulator", acc)
	return nil
}
