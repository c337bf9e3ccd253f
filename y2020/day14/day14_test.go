package day14

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepurvis/advent-of-code/internal/input"
)

func parse(t *testing.T, text string) []Instr {
	prog, err := Parse(input.FromString("sample", text).Lines())
	require.NoError(t, err)
	return prog
}

func TestDecodeValue(t *testing.T) {
	prog := parse(t, `
    mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X
    mem[8] = 11
    mem[7] = 101
    mem[8] = 0
    `)
	mem := Execute(prog, DecodeValue)
	assert.Equal(t, Memory{7: 101, 8: 64}, mem)
	assert.Equal(t, uint64(165), mem.Sum())
}

func TestDecodeAddress(t *testing.T) {
	prog := parse(t, `
    mask = 000000000000000000000000000000X1001X
    mem[42] = 100
    mask = 00000000000000000000000000000000X0XX
    mem[26] = 1
    `)
	mem := Execute(prog, DecodeAddress)
	assert.Len(t, mem, 10)
	assert.Equal(t, uint64(100), mem[59])
	assert.Equal(t, uint64(208), mem.Sum())
}

func TestParseMask(t *testing.T) {
	m := ParseMask("XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X")
	assert.Equal(t, uint64(64), m.Ones)
	assert.Equal(t, uint64(1<<Width-1)&^(64|2), m.Floating)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(input.FromString("bad", "mask = 01\n").Lines())
	assert.EqualError(t, err, "bad:1: unrecognized instruction")
	_, err = Parse(input.FromString("bad", "mem[99999999999999] = 1\n").Lines())
	assert.EqualError(t, err, `bad:1: invalid address "99999999999999"`)
}
