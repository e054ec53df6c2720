// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/rvbasm/isa"
)

// Line is a single translated line of the input.
type Line struct {
	LineNo int         // Input line number, from 1.
	Text   Instruction // Normalized text.
	Word   *isa.Word   // Encoding, or nil if the line passes through.
}

// Listing is the translated input, in input order.
type Listing struct {
	Lines []Line
}

// Emit returns the output text of the line. In debug mode encoded lines are
// preceded by their field breakdown.
func (line *Line) Emit(debug bool) (out []string, err error) {
	if line.Word == nil {
		out = []string{line.Text.String()}
		return
	}

	directive, err := line.Word.Directive()
	if err != nil {
		err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text.String(), Err: err}
		return
	}

	if debug {
		out = append(out, "# Encoding "+line.Word.Encoding())
	}
	out = append(out, "# "+line.Text.String(), directive)

	return
}

// Write emits the translated listing.
func (lst *Listing) Write(w io.Writer, debug bool) (err error) {
	for n := range lst.Lines {
		var out []string
		out, err = lst.Lines[n].Emit(debug)
		if err != nil {
			return
		}
		for _, text := range out {
			_, err = fmt.Fprintln(w, text)
			if err != nil {
				return
			}
		}
	}

	return
}

// Words iterates over the encoded lines, by line number.
func (lst *Listing) Words() iter.Seq2[int, *isa.Word] {
	return func(yield func(lineno int, word *isa.Word) bool) {
		for _, line := range lst.Lines {
			if line.Word == nil {
				continue
			}
			if !yield(line.LineNo, line.Word) {
				return
			}
		}
	}
}

// Binary returns the encoded instruction words, in input order.
func (lst *Listing) Binary() (bins []uint32, err error) {
	for _, line := range lst.Lines {
		if line.Word == nil {
			continue
		}
		var value uint32
		value, err = line.Word.Uint32()
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text.String(), Err: err}
			return
		}
		bins = append(bins, value)
	}

	return
}
