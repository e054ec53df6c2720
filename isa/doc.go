// Package isa encodes the RISC-V bit-manipulation extensions (Zba, Zbb, Zbc
// and Zbs) into 32-bit instruction words.
//
// A Word is a bit addressable instruction buffer with one of two fixed
// layouts: LAYOUT_R, where funct7 sits above rs2, and LAYOUT_SHIFT, where
// funct6 sits above a 6-bit shift amount. Each supported mnemonic has a
// Recipe naming its opcode, function codes and operand Shape; applying the
// recipe to its operands yields a Word ready for emission as a .byte
// directive.
package isa
