package asm

import (
	"errors"

	"github.com/ezrec/rvbasm/translate"
)

var f = translate.From

var (
	// Expression errors
	ErrExpressionRange = errors.New(f("value out of range"))
)

// ErrSyntax locates an error in the assembly input.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrExpression is a failed $(...) evaluation.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("$(%v): %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

// ErrExpressionType is the Starlark type of a non-integer result.
type ErrExpressionType string

func (err ErrExpressionType) Error() string {
	return f("%v is not an integer", string(err))
}
