// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// XLEN is the register width predeclared to expressions.
const XLEN = 64

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// evalInt evaluates a Starlark expression that must produce an integer.
func evalInt(expr string, lineno int) (value int64, err error) {
	defer func() {
		if err != nil {
			err = ErrExpression{Expr: expr, Err: err}
		}
	}()

	env := starlark.StringDict{
		"XLEN":   starlark.MakeInt(XLEN),
		"LINENO": starlark.MakeInt(lineno),
	}

	thread := &starlark.Thread{Name: fmt.Sprintf("line %d", lineno)}
	result, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "$()", expr, env)
	if err != nil {
		return
	}

	integer, ok := result.(starlark.Int)
	if !ok {
		err = ErrExpressionType(result.Type())
		return
	}

	value, ok = integer.Int64()
	if !ok {
		err = ErrExpressionRange
	}

	return
}

// expand replaces every $(...) in the line with its decimal value. The first
// failing expression is reported.
func expand(line string, lineno int) (out string, err error) {
	out = reParen.ReplaceAllStringFunc(line, func(str string) string {
		if err != nil {
			return str
		}
		var value int64
		value, err = evalInt(str[2:len(str)-1], lineno)
		if err != nil {
			return str
		}
		return fmt.Sprintf("%d", value)
	})
	return
}
