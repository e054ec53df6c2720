package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Line     string
		Expected Instruction
		String   string
	}{
		{"add.uw a2, s11, s5", Instruction{Opcode: "add.uw", Operands: []string{"a2", "s11", "s5"}}, "add.uw a2,s11,s5"},
		{"  ANDN Zero,TP , s6  ", Instruction{Opcode: "andn", Operands: []string{"zero", "tp", "s6"}}, "andn zero,tp,s6"},
		{"sh3add.uw a3,s5,gp", Instruction{Opcode: "sh3add.uw", Operands: []string{"a3", "s5", "gp"}}, "sh3add.uw a3,s5,gp"},
		{"clz\ta0,\ta1", Instruction{Opcode: "clz", Operands: []string{"a0", "a1"}}, "clz a0,a1"},
		{"add t6, t6, s0", Instruction{Opcode: "add", Operands: []string{"t6", "t6", "s0"}}, "add t6,t6,s0"},
		{"li a0, , 1", Instruction{Opcode: "li", Operands: []string{"a0", "1"}}, "li a0,1"},
		{".globl main", Instruction{Opcode: ".globl", Operands: []string{"main"}}, ".globl main"},
		{"", Instruction{Passthrough: true, Raw: ""}, ""},
		{"   ", Instruction{Passthrough: true, Raw: ""}, ""},
		{"Main:", Instruction{Passthrough: true, Raw: "main:"}, "main:"},
		{"  ret  ", Instruction{Passthrough: true, Raw: "ret"}, "ret"},
	}

	for _, testcase := range table {
		inst := ParseLine(testcase.Line)
		assert.Equal(testcase.Expected, inst, testcase.Line)
		assert.Equal(testcase.String, inst.String(), testcase.Line)
	}
}
