// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// WORD_BITS is the size of an instruction word.
const WORD_BITS = 32

// Word is a 32-bit instruction buffer, addressable by bit.
type Word struct {
	data    [4]byte
	layout  Layout
	written uint16 // Mask of fields written, by Field.
}

// NewWord creates an all-zero instruction word with a fixed layout.
func NewWord(layout Layout) (word *Word) {
	word = &Word{layout: layout}
	return
}

// Layout returns the upper half layout of the word.
func (word *Word) Layout() Layout {
	return word.layout
}

// Set writes bits into positions [begin, end], inclusively. bits[0] lands at
// position begin.
func (word *Word) Set(begin, end int, bits Bits) (err error) {
	if begin < 0 || end >= WORD_BITS || begin > end {
		err = ErrFieldRange
		return
	}
	if end-begin+1 != len(bits) {
		err = ErrFieldLength
		return
	}
	for _, bit := range bits {
		if bit > 1 {
			err = ErrFieldBit
			return
		}
	}

	for n, bit := range bits {
		index := begin + n
		mask := byte(1) << (index % 8)
		if bit == 0 {
			word.data[index/8] &^= mask // clear
		} else {
			word.data[index/8] |= mask // set
		}
	}

	return
}

// Get reads the bits at positions [begin, end], inclusively.
func (word *Word) Get(begin, end int) (bits Bits, err error) {
	if begin < 0 || end >= WORD_BITS || begin > end {
		err = ErrFieldRange
		return
	}

	bits = make(Bits, 0, end-begin+1)
	for index := begin; index <= end; index++ {
		bits = append(bits, (word.data[index/8]>>(index%8))&1)
	}

	return
}

// Has reports if the field has been written.
func (word *Word) Has(fd Field) bool {
	return word.written&(1<<fd) != 0
}

// setField writes value into a named field.
func (word *Word) setField(fd Field, value uint32) (err error) {
	defer func() {
		if err != nil {
			err = ErrField{Field: fd.String(), Err: err}
		}
	}()

	if !word.layout.allowed(fd) {
		err = ErrFieldPairing
		return
	}

	bits, err := BitsOf(value, fd.Width())
	if err != nil {
		return
	}

	begin, end := fd.Span()
	err = word.Set(begin, end, bits)
	if err != nil {
		return
	}

	word.written |= 1 << fd

	return
}

// setRegister resolves a register name into a named field.
func (word *Word) setRegister(fd Field, name string) (err error) {
	reg, err := LookupRegister(name)
	if err != nil {
		err = ErrField{Field: fd.String(), Err: err}
		return
	}

	return word.setField(fd, uint32(reg))
}

// SetOpcode writes the 7-bit major opcode.
func (word *Word) SetOpcode(opcode uint8) error {
	return word.setField(FIELD_OPCODE, uint32(opcode))
}

// SetRd writes the destination register.
func (word *Word) SetRd(name string) error {
	return word.setRegister(FIELD_RD, name)
}

// SetFunct3 writes the 3-bit minor opcode.
func (word *Word) SetFunct3(funct3 uint8) error {
	return word.setField(FIELD_FUNCT3, uint32(funct3))
}

// SetRs1 writes the first source register.
func (word *Word) SetRs1(name string) error {
	return word.setRegister(FIELD_RS1, name)
}

// SetRs2 writes the second source register.
func (word *Word) SetRs2(name string) error {
	return word.setRegister(FIELD_RS2, name)
}

// SetRs2Value writes a literal into the rs2 slot.
func (word *Word) SetRs2Value(value uint8) error {
	return word.setField(FIELD_RS2, uint32(value))
}

// SetShamt writes a 6-bit shift amount. Only valid for LAYOUT_SHIFT.
func (word *Word) SetShamt(shamt uint8) error {
	return word.setField(FIELD_SHAMT, uint32(shamt))
}

// SetFunct6 writes the function code paired with shamt. Only valid for
// LAYOUT_SHIFT.
func (word *Word) SetFunct6(funct6 uint8) error {
	return word.setField(FIELD_FUNCT6, uint32(funct6))
}

// SetFunct7 writes the 7-bit function code. Only valid for LAYOUT_R.
func (word *Word) SetFunct7(funct7 uint8) error {
	return word.setField(FIELD_FUNCT7, uint32(funct7))
}

// SetOperands writes rd, rs1 and rs2 from three register operands.
func (word *Word) SetOperands(operands []string) (err error) {
	if len(operands) != 3 {
		err = ErrOperandArity{Want: 3, Got: len(operands)}
		return
	}

	err = word.SetRd(operands[0])
	if err != nil {
		return
	}
	err = word.SetRs1(operands[1])
	if err != nil {
		return
	}
	err = word.SetRs2(operands[2])

	return
}

// Set2Operands writes rd and rs1 from two register operands, and a constant
// into the rs2 slot.
func (word *Word) Set2Operands(operands []string, rs2 uint8) (err error) {
	if len(operands) != 2 {
		err = ErrOperandArity{Want: 2, Got: len(operands)}
		return
	}

	err = word.SetRd(operands[0])
	if err != nil {
		return
	}
	err = word.SetRs1(operands[1])
	if err != nil {
		return
	}
	err = word.SetRs2Value(rs2)

	return
}

// SetImmediate writes rd and rs1 from two register operands, and a decimal
// shift amount into shamt.
func (word *Word) SetImmediate(operands []string) (err error) {
	if len(operands) != 3 {
		err = ErrOperandArity{Want: 3, Got: len(operands)}
		return
	}

	err = word.SetRd(operands[0])
	if err != nil {
		return
	}
	err = word.SetRs1(operands[1])
	if err != nil {
		return
	}

	shamt, err := ParseShift(operands[2], FIELD_SHAMT.Width())
	if err != nil {
		err = ErrField{Field: FIELD_SHAMT.String(), Err: err}
		return
	}
	err = word.SetShamt(shamt)

	return
}

// ParseShift parses a decimal shift amount that must fit in width bits.
func ParseShift(text string, width int) (shamt uint8, err error) {
	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}
	if value>>width != 0 {
		err = ErrFieldWidth
		return
	}

	shamt = uint8(value)
	return
}

// Bytes returns the encoded word, least significant byte first.
func (word *Word) Bytes() (data [4]byte, err error) {
	if word.Has(FIELD_SHAMT) != word.Has(FIELD_FUNCT6) {
		err = ErrFieldPairing
		return
	}

	data = word.data
	return
}

// Uint32 returns the encoded word as an integer.
func (word *Word) Uint32() (value uint32, err error) {
	data, err := word.Bytes()
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(data[:])
	return
}

// Directive renders the word as an assembler .byte directive.
func (word *Word) Directive() (text string, err error) {
	data, err := word.Bytes()
	if err != nil {
		return
	}

	text = fmt.Sprintf(".byte 0x%02x,0x%02x,0x%02x,0x%02x", data[0], data[1], data[2], data[3])
	return
}

// Fields iterates over the fields of the word layout, most significant first.
func (word *Word) Fields() iter.Seq2[Field, Bits] {
	return func(yield func(Field, Bits) bool) {
		for _, fd := range word.layout.Fields() {
			begin, end := fd.Span()
			bits, _ := word.Get(begin, end)
			if !yield(fd, bits) {
				return
			}
		}
	}
}

// Encoding describes the field breakdown of the word.
func (word *Word) Encoding() string {
	var parts []string
	for fd, bits := range word.Fields() {
		parts = append(parts, fmt.Sprintf("%v: %v", fd, bits))
	}
	return strings.Join(parts, " ")
}
