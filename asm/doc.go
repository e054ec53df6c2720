// Package asm translates RISC-V assembly text, replacing bit-manipulation
// instructions with .byte directives of their encodings.
//
// Every line is independent: there are no labels, relocations or macros.
// Lines that are not of the form "opcode operands", and opcodes outside the
// Zba, Zbb, Zbc and Zbs extensions, pass through. Operands of encoded
// instructions may use $(...) compile-time expressions.
package asm
