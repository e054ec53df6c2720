// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvbasm/isa"
)

func assemble(t *testing.T, asm *Assembler, program []string, debug bool) (output []string) {
	t.Helper()

	lst, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
		return
	}

	buf := &bytes.Buffer{}
	err = lst.Write(buf, debug)
	if err != nil {
		t.Fatal(err)
		return
	}

	output = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"    .text",
		"main:",
		"",
		"add.uw a2, s11, s5",
		"ANDN zero, tp, s6",
		"add t6, t6, s0",
		"xor t6, t6, s6",
		"bclr s10, a4, a5",
		"ret",
		"sh3add.uw a3,s5,gp",
	}

	expected := []string{
		".text",
		"main:",
		"",
		"# add.uw a2,s11,s5",
		".byte 0x3b,0x86,0x5d,0x09",
		"# andn zero,tp,s6",
		".byte 0x33,0x70,0x62,0x41",
		"add t6,t6,s0",
		"xor t6,t6,s6",
		"# bclr s10,a4,a5",
		".byte 0x33,0x1d,0xf7,0x48",
		"ret",
		"# sh3add.uw a3,s5,gp",
		".byte 0xbb,0xe6,0x3a,0x20",
	}

	assert.Equal(expected, assemble(t, &Assembler{}, program, false))
}

func TestAssemblerDebug(t *testing.T) {
	assert := assert.New(t)

	output := assemble(t, &Assembler{}, []string{"rori a4, a5, 33", "roriw a6, a7, 31"}, true)

	expected := []string{
		"# Encoding funct6: 011000 shamt: 100001 rs1: 01111 funct3: 101 rd: 01110 opcode: 0010011",
		"# rori a4,a5,33",
		".byte 0x13,0xd7,0x17,0x62",
		"# Encoding funct7: 0110000 rs2: 11111 rs1: 10001 funct3: 101 rd: 10000 opcode: 0011011",
		"# roriw a6,a7,31",
		".byte 0x1b,0xd8,0xf8,0x61",
	}

	assert.Equal(expected, output)
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	output := assemble(t, &Assembler{}, []string{
		"rori a4, a5, $(XLEN // 2 + 1)",
		"li a0, $(not evaluated)",
	}, false)

	expected := []string{
		"# rori a4,a5,33",
		".byte 0x13,0xd7,0x17,0x62",
		"li a0,$(not evaluated)",
	}

	assert.Equal(expected, output)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Program []string
		LineNo  int
		Err     error
	}{
		{[]string{"andn a0, a1, x9"}, 1, isa.ErrRegisterUnknown("x9")},
		{[]string{"nop", "clz a0"}, 2, isa.ErrOperandArity{Mnemonic: "clz", Want: 2, Got: 1}},
		{[]string{"bseti a0, a1, 64"}, 1, isa.ErrFieldWidth},
		{[]string{"roriw a0, a1, 32"}, 1, isa.ErrFieldWidth},
		{[]string{"rori a0, a1, 0x3"}, 1, isa.ErrParseNumber("0x3")},
		{[]string{"rori a0, a1, $(XLEN)"}, 1, isa.ErrFieldWidth},
		{[]string{"rori a0, a1, $(None)"}, 1, ErrExpressionType("NoneType")},
	}

	for _, testcase := range table {
		for _, jobs := range []int{0, 4} {
			asm := &Assembler{Jobs: jobs}
			_, err := asm.Parse(strings.NewReader(strings.Join(testcase.Program, "\n")))
			assert.ErrorIs(err, testcase.Err, "%v", testcase.Program)

			var es *ErrSyntax
			if assert.True(errors.As(err, &es), "%v", testcase.Program) {
				assert.Equal(testcase.LineNo, es.LineNo)
				assert.Equal(testcase.Program[testcase.LineNo-1], es.Line)
			}
		}
	}
}

func TestAssemblerErrorEarliest(t *testing.T) {
	assert := assert.New(t)

	var program []string
	for range 64 {
		program = append(program, "clz a0, a1")
	}
	program[40] = "clz a0, bad40"
	program[10] = "clz a0, bad10"

	asm := &Assembler{Jobs: 8}
	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))

	var es *ErrSyntax
	if assert.True(errors.As(err, &es)) {
		assert.Equal(11, es.LineNo)
		assert.ErrorIs(err, isa.ErrRegisterUnknown("bad10"))
	}
}

func TestAssemblerJobs(t *testing.T) {
	assert := assert.New(t)

	var program []string
	for _, mnemonic := range isa.Mnemonics() {
		rc, _ := isa.Lookup(mnemonic)
		switch rc.Shape {
		case isa.SHAPE_UNARY:
			program = append(program, mnemonic+" a0, a1")
		case isa.SHAPE_SHIFT, isa.SHAPE_SHIFTW:
			program = append(program, mnemonic+" s0, fp, 7")
		default:
			program = append(program, mnemonic+" t0, t1, t2")
		}
		program = append(program, "# "+mnemonic, "mv a0, a1")
	}

	serial := assemble(t, &Assembler{}, program, true)
	parallel := assemble(t, &Assembler{Jobs: 6}, program, true)

	assert.Equal(serial, parallel)
	assert.Equal(len(isa.Mnemonics())*5, len(serial))
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	lst, err := asm.Parse(strings.NewReader("label:\nclz a0, a1\nadd a0, a0, a1\nxnor s3, s4, s5\n"))
	assert.NoError(err)
	assert.Equal(4, len(lst.Lines))

	var linenos []int
	for lineno := range lst.Words() {
		linenos = append(linenos, lineno)
	}
	assert.Equal([]int{2, 4}, linenos)

	bins, err := lst.Binary()
	assert.NoError(err)
	assert.Equal([]uint32{0x60059513, 0x415a49b3}, bins)

	assert.True(lst.Lines[0].Text.Passthrough)
	assert.Nil(lst.Lines[2].Word)
}

func TestListing_Pairing(t *testing.T) {
	assert := assert.New(t)

	word := isa.NewWord(isa.LAYOUT_SHIFT)
	assert.NoError(word.SetShamt(3))

	lst := &Listing{Lines: []Line{
		{LineNo: 7, Text: ParseLine("bseti a0, a0, 3"), Word: word},
	}}

	err := lst.Write(&bytes.Buffer{}, false)
	assert.ErrorIs(err, isa.ErrFieldPairing)

	_, err = lst.Binary()
	assert.ErrorIs(err, isa.ErrFieldPairing)

	var es *ErrSyntax
	if assert.True(errors.As(err, &es)) {
		assert.Equal(7, es.LineNo)
		assert.Equal("bseti a0,a0,3", es.Line)
		assert.Contains(es.Error(), "line 7 'bseti a0,a0,3'")
	}
}

func TestAssemblerLongLine(t *testing.T) {
	assert := assert.New(t)

	long := ".ascii \"" + strings.Repeat("x", 70000) + "\""

	output := assemble(t, &Assembler{}, []string{"andn zero, tp, s6", long, "ret"}, false)

	expected := []string{
		"# andn zero,tp,s6",
		".byte 0x33,0x70,0x62,0x41",
		long,
		"ret",
	}

	assert.Equal(expected, output)
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestAssemblerReadError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(io.MultiReader(strings.NewReader("clz a0, a1\nret\n"), failReader{}))
	assert.ErrorIs(err, io.ErrUnexpectedEOF)

	var es *ErrSyntax
	if assert.True(errors.As(err, &es)) {
		assert.Equal(3, es.LineNo)
	}
}
