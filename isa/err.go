// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"

	"github.com/ezrec/rvbasm/translate"
)

var f = translate.From

var (
	// Field encoder errors
	ErrFieldWidth   = errors.New(f("value exceeds field width"))
	ErrFieldRange   = errors.New(f("bit range invalid"))
	ErrFieldLength  = errors.New(f("bit count does not match range"))
	ErrFieldBit     = errors.New(f("bit is neither 0 nor 1"))
	ErrFieldPairing = errors.New(f("funct6 should be paired with shamt"))

	// Recipe errors
	ErrShapeInvalid = errors.New(f("recipe shape invalid"))
)

// ErrRegisterUnknown is returned for a name that is not in the register file.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("can't find register name %v", string(err))
}

// ErrOperandArity is returned when a recipe receives the wrong operand count.
type ErrOperandArity struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrOperandArity) Error() string {
	if len(err.Mnemonic) == 0 {
		return f("expected %d operands, got %d", err.Want, err.Got)
	}
	return f("%v expects %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a decimal number", string(err))
}

// ErrField locates a field encoder error.
type ErrField struct {
	Field string
	Err   error
}

func (err ErrField) Error() string {
	return f("%v: %v", err.Field, err.Err)
}

func (err ErrField) Unwrap() error {
	return err.Err
}
