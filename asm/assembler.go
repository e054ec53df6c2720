// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"math"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/rvbasm/isa"
)

// Assembler is a single pass translator of bit-manipulation mnemonics.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Jobs    int  // Number of concurrent line encoders. Serial if < 2.
}

// parseLine normalizes and, when possible, encodes a single line.
func (asm *Assembler) parseLine(text string, lineno int) (line Line, err error) {
	if asm.Verbose {
		log.Printf("%v: %v\n", lineno, text)
	}

	line.LineNo = lineno
	line.Text = ParseLine(text)
	if line.Text.Passthrough {
		return
	}

	rc, ok := isa.Lookup(line.Text.Opcode)
	if !ok {
		// Not a bit-manipulation instruction.
		return
	}

	if asm.Verbose {
		log.Printf("%v: recipe %s", lineno, spew.Sdump(rc))
	}

	if strings.Contains(text, "$(") {
		var expanded string
		expanded, err = expand(text, lineno)
		if err != nil {
			return
		}
		line.Text = ParseLine(expanded)
	}

	line.Word, err = rc.Encode(line.Text.Operands)

	return
}

// Parse reads an input stream into a Listing. The first failing line, in
// input order, is reported as an ErrSyntax.
func (asm *Assembler) Parse(input io.Reader) (lst *Listing, err error) {
	var texts []string

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), math.MaxInt32)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: len(texts) + 1, Err: err}
		return
	}

	lines := make([]Line, len(texts))
	errs := make([]error, len(texts))

	if asm.Jobs > 1 {
		var group errgroup.Group
		group.SetLimit(asm.Jobs)
		for n := range texts {
			group.Go(func() error {
				lines[n], errs[n] = asm.parseLine(texts[n], n+1)
				return errs[n]
			})
		}
		// errs holds every failure; the earliest line is reported below.
		_ = group.Wait()
	} else {
		for n := range texts {
			lines[n], errs[n] = asm.parseLine(texts[n], n+1)
			if errs[n] != nil {
				break
			}
		}
	}

	for n, lerr := range errs {
		if lerr != nil {
			err = &ErrSyntax{LineNo: n + 1, Line: texts[n], Err: lerr}
			return
		}
	}

	lst = &Listing{Lines: lines}

	return
}
