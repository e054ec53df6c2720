// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"maps"
	"slices"
)

// Shape is the operand arrangement of a recipe.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_R      = Shape(0) // r
	SHAPE_UNARY  = Shape(1) // unary
	SHAPE_SHIFT  = Shape(2) // shift
	SHAPE_SHIFTW = Shape(3) // shiftw
)

// Extension names the bit-manipulation sub-extension of a mnemonic.
type Extension string

const (
	EXT_ZBA = Extension("zba") // Address generation
	EXT_ZBB = Extension("zbb") // Basic bit manipulation
	EXT_ZBC = Extension("zbc") // Carry-less multiplication
	EXT_ZBS = Extension("zbs") // Single-bit instructions
)

// Major opcodes.
const (
	OPCODE_OP_IMM    = 0b0010011
	OPCODE_OP_IMM_32 = 0b0011011
	OPCODE_OP        = 0b0110011
	OPCODE_OP_32     = 0b0111011
)

// Recipe is the fixed encoding of a single mnemonic.
type Recipe struct {
	Mnemonic  string
	Extension Extension
	Shape     Shape
	Opcode    uint8
	Funct3    uint8
	Funct     uint8 // funct6 for SHAPE_SHIFT, funct7 otherwise.
	Selector  uint8 // rs2 constant for SHAPE_UNARY.
}

// makeR creates a three register recipe.
func makeR(ext Extension, mnemonic string, opcode, funct3, funct7 uint8) Recipe {
	return Recipe{Mnemonic: mnemonic, Extension: ext, Shape: SHAPE_R, Opcode: opcode, Funct3: funct3, Funct: funct7}
}

// makeUnary creates a two register recipe with a constant rs2 selector.
func makeUnary(ext Extension, mnemonic string, opcode, funct3, funct7, selector uint8) Recipe {
	return Recipe{Mnemonic: mnemonic, Extension: ext, Shape: SHAPE_UNARY, Opcode: opcode, Funct3: funct3, Funct: funct7, Selector: selector}
}

// makeShift creates a two register recipe with a 6-bit shift amount.
func makeShift(ext Extension, mnemonic string, opcode, funct3, funct6 uint8) Recipe {
	return Recipe{Mnemonic: mnemonic, Extension: ext, Shape: SHAPE_SHIFT, Opcode: opcode, Funct3: funct3, Funct: funct6}
}

var recipeList = []Recipe{
	makeR(EXT_ZBA, "add.uw", OPCODE_OP_32, 0b000, 0b0000100),
	makeR(EXT_ZBB, "andn", OPCODE_OP, 0b111, 0b0100000),
	makeR(EXT_ZBS, "bclr", OPCODE_OP, 0b001, 0b0100100),
	makeShift(EXT_ZBS, "bclri", OPCODE_OP_IMM, 0b001, 0b010010),
	makeR(EXT_ZBS, "bext", OPCODE_OP, 0b101, 0b0100100),
	makeShift(EXT_ZBS, "bexti", OPCODE_OP_IMM, 0b101, 0b010010),
	makeR(EXT_ZBS, "binv", OPCODE_OP, 0b001, 0b0110100),
	makeShift(EXT_ZBS, "binvi", OPCODE_OP_IMM, 0b001, 0b011010),
	makeR(EXT_ZBS, "bset", OPCODE_OP, 0b001, 0b0010100),
	makeShift(EXT_ZBS, "bseti", OPCODE_OP_IMM, 0b001, 0b001010),
	makeR(EXT_ZBC, "clmul", OPCODE_OP, 0b001, 0b0000101),
	makeR(EXT_ZBC, "clmulh", OPCODE_OP, 0b011, 0b0000101),
	makeR(EXT_ZBC, "clmulr", OPCODE_OP, 0b010, 0b0000101),
	makeUnary(EXT_ZBB, "clz", OPCODE_OP_IMM, 0b001, 0b0110000, 0b00000),
	makeUnary(EXT_ZBB, "clzw", OPCODE_OP_IMM_32, 0b001, 0b0110000, 0b00000),
	makeUnary(EXT_ZBB, "cpop", OPCODE_OP_IMM, 0b001, 0b0110000, 0b00010),
	makeUnary(EXT_ZBB, "cpopw", OPCODE_OP_IMM_32, 0b001, 0b0110000, 0b00010),
	makeUnary(EXT_ZBB, "ctz", OPCODE_OP_IMM, 0b001, 0b0110000, 0b00001),
	makeUnary(EXT_ZBB, "ctzw", OPCODE_OP_IMM_32, 0b001, 0b0110000, 0b00001),
	makeR(EXT_ZBB, "max", OPCODE_OP, 0b110, 0b0000101),
	makeR(EXT_ZBB, "maxu", OPCODE_OP, 0b111, 0b0000101),
	makeR(EXT_ZBB, "min", OPCODE_OP, 0b100, 0b0000101),
	makeR(EXT_ZBB, "minu", OPCODE_OP, 0b101, 0b0000101),
	makeUnary(EXT_ZBB, "orc.b", OPCODE_OP_IMM, 0b101, 0b0010100, 0b00111),
	makeR(EXT_ZBB, "orn", OPCODE_OP, 0b110, 0b0100000),
	makeUnary(EXT_ZBB, "rev8", OPCODE_OP_IMM, 0b101, 0b0110101, 0b11000),
	makeR(EXT_ZBB, "rol", OPCODE_OP, 0b001, 0b0110000),
	makeR(EXT_ZBB, "rolw", OPCODE_OP_32, 0b001, 0b0110000),
	makeR(EXT_ZBB, "ror", OPCODE_OP, 0b101, 0b0110000),
	makeShift(EXT_ZBB, "rori", OPCODE_OP_IMM, 0b101, 0b011000),
	// roriw keeps funct7 and puts its 5-bit shift in the rs2 slot.
	{Mnemonic: "roriw", Extension: EXT_ZBB, Shape: SHAPE_SHIFTW, Opcode: OPCODE_OP_IMM_32, Funct3: 0b101, Funct: 0b0110000},
	makeR(EXT_ZBB, "rorw", OPCODE_OP_32, 0b101, 0b0110000),
	makeUnary(EXT_ZBB, "sext.b", OPCODE_OP_IMM, 0b001, 0b0110000, 0b00100),
	makeUnary(EXT_ZBB, "sext.h", OPCODE_OP_IMM, 0b001, 0b0110000, 0b00101),
	makeR(EXT_ZBA, "sh1add", OPCODE_OP, 0b010, 0b0010000),
	makeR(EXT_ZBA, "sh1add.uw", OPCODE_OP_32, 0b010, 0b0010000),
	makeR(EXT_ZBA, "sh2add", OPCODE_OP, 0b100, 0b0010000),
	makeR(EXT_ZBA, "sh2add.uw", OPCODE_OP_32, 0b100, 0b0010000),
	makeR(EXT_ZBA, "sh3add", OPCODE_OP, 0b110, 0b0010000),
	makeR(EXT_ZBA, "sh3add.uw", OPCODE_OP_32, 0b110, 0b0010000),
	makeShift(EXT_ZBA, "slli.uw", OPCODE_OP_IMM_32, 0b001, 0b000010),
	makeR(EXT_ZBB, "xnor", OPCODE_OP, 0b100, 0b0100000),
	makeUnary(EXT_ZBB, "zext.h", OPCODE_OP_32, 0b100, 0b0000100, 0b00000),
}

// recipeMap is the mnemonic dispatch table.
var recipeMap = func() map[string]Recipe {
	m := make(map[string]Recipe, len(recipeList))
	for _, rc := range recipeList {
		m[rc.Mnemonic] = rc
	}
	return m
}()

// Lookup finds the recipe for a lowercase mnemonic.
func Lookup(mnemonic string) (rc Recipe, ok bool) {
	rc, ok = recipeMap[mnemonic]
	return
}

// Mnemonics returns all supported mnemonics, sorted.
func Mnemonics() []string {
	return slices.Sorted(maps.Keys(recipeMap))
}

// Arity returns the number of operands the recipe expects.
func (rc Recipe) Arity() int {
	if rc.Shape == SHAPE_UNARY {
		return 2
	}
	return 3
}

// Layout returns the instruction word layout of the recipe.
func (rc Recipe) Layout() Layout {
	if rc.Shape == SHAPE_SHIFT {
		return LAYOUT_SHIFT
	}
	return LAYOUT_R
}

// Encode applies the recipe to its operands.
func (rc Recipe) Encode(operands []string) (word *Word, err error) {
	if len(operands) != rc.Arity() {
		err = ErrOperandArity{Mnemonic: rc.Mnemonic, Want: rc.Arity(), Got: len(operands)}
		return
	}

	w := NewWord(rc.Layout())

	err = w.SetOpcode(rc.Opcode)
	if err != nil {
		return
	}
	err = w.SetFunct3(rc.Funct3)
	if err != nil {
		return
	}

	switch rc.Shape {
	case SHAPE_R:
		err = w.SetFunct7(rc.Funct)
		if err == nil {
			err = w.SetOperands(operands)
		}
	case SHAPE_UNARY:
		err = w.SetFunct7(rc.Funct)
		if err == nil {
			err = w.Set2Operands(operands, rc.Selector)
		}
	case SHAPE_SHIFT:
		err = w.SetFunct6(rc.Funct)
		if err == nil {
			err = w.SetImmediate(operands)
		}
	case SHAPE_SHIFTW:
		err = w.SetFunct7(rc.Funct)
		if err != nil {
			break
		}
		var shamt uint8
		shamt, err = ParseShift(operands[2], FIELD_RS2.Width())
		if err != nil {
			err = ErrField{Field: FIELD_RS2.String(), Err: err}
			break
		}
		err = w.Set2Operands(operands[:2], shamt)
	default:
		err = ErrShapeInvalid
	}
	if err != nil {
		return
	}

	word = w
	return
}

// Encode looks up a mnemonic and applies its recipe. ok is false when the
// mnemonic is not part of the bit-manipulation extensions.
func Encode(mnemonic string, operands []string) (word *Word, ok bool, err error) {
	rc, ok := Lookup(mnemonic)
	if !ok {
		return
	}

	word, err = rc.Encode(operands)
	return
}
