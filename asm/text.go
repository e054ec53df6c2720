// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// Instruction is a normalized line of assembly text.
type Instruction struct {
	Opcode      string   // Lowercase opcode.
	Operands    []string // Operands, in order.
	Passthrough bool     // If set, the line is not opcode+operand shaped.
	Raw         string   // Normalized line text, for passthrough.
}

// ParseLine normalizes a line of assembly text. Lines with fewer than two
// words are passed through.
func ParseLine(line string) (inst Instruction) {
	line = strings.ToLower(strings.TrimSpace(line))

	words := strings.Fields(line)
	if len(words) < 2 {
		inst = Instruction{Passthrough: true, Raw: line}
		return
	}

	inst.Opcode = words[0]
	rest := line[len(words[0]):]
	for _, op := range strings.Split(rest, ",") {
		op = strings.TrimSpace(op)
		if len(op) > 0 {
			inst.Operands = append(inst.Operands, op)
		}
	}

	return
}

// String renders the instruction with comma separated operands.
func (inst Instruction) String() string {
	if inst.Passthrough {
		return inst.Raw
	}
	return inst.Opcode + " " + strings.Join(inst.Operands, ",")
}
