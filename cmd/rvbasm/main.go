// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command rvbasm rewrites RISC-V bit-manipulation instructions in assembly
// text as .byte directives, for assemblers without Zba/Zbb/Zbc/Zbs support.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/ezrec/rvbasm/asm"
	"github.com/ezrec/rvbasm/isa"
	"github.com/ezrec/rvbasm/translate"
)

var f = translate.From

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// listMnemonics writes the supported mnemonics.
func listMnemonics(w io.Writer) (err error) {
	for _, mnemonic := range isa.Mnemonics() {
		rc, _ := isa.Lookup(mnemonic)
		_, err = fmt.Fprintf(w, "%-10s %v %v\n", mnemonic, rc.Extension, rc.Shape)
		if err != nil {
			return
		}
	}
	return
}

func run(args []string, stdin io.Reader, stdout io.Writer) (err error) {
	var input string
	var output string
	var binout string
	var debug bool
	var verbose bool
	var list bool
	var jobs int

	flags := flag.NewFlagSet("rvbasm", flag.ContinueOnError)
	flags.StringVar(&input, "i", "-", "input file, default stdin")
	flags.StringVar(&output, "o", "-", "output file, default stdout")
	flags.StringVar(&binout, "b", "", "file to save encoded words to, little endian")
	flags.BoolVar(&debug, "d", env.Bool("RVBASM_DEBUG"), "debug flags, print more information: encoding")
	flags.BoolVar(&verbose, "v", env.Bool("RVBASM_VERBOSE"), "Verbose mode")
	flags.BoolVar(&list, "l", false, "list supported mnemonics")
	flags.IntVar(&jobs, "j", env.Int("RVBASM_JOBS", 1), "concurrent line encoders")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = errors.New(f("unknown arguments: %v", flags.Args()))
		return
	}

	if list {
		return listMnemonics(stdout)
	}

	inf := stdin
	if input != "-" {
		var file *os.File
		file, err = os.Open(input)
		if err != nil {
			return
		}
		defer file.Close()
		inf = file
	}

	assembler := &asm.Assembler{Verbose: verbose, Jobs: jobs}
	lst, err := assembler.Parse(inf)
	if err != nil {
		if input != "-" {
			err = fmt.Errorf("%v: %w", input, err)
		}
		return
	}

	if verbose {
		for lineno, word := range lst.Words() {
			log.Printf("%v: %v", lineno, word.Encoding())
		}
	}

	ouf := stdout
	if output != "-" {
		var file *os.File
		file, err = os.Create(output)
		if err != nil {
			return
		}
		defer file.Close()
		ouf = file
	}

	err = lst.Write(ouf, debug)
	if err != nil {
		return
	}

	if len(binout) != 0 {
		var bins []uint32
		bins, err = lst.Binary()
		if err != nil {
			return
		}
		var data []byte
		for _, bin := range bins {
			data = binary.LittleEndian.AppendUint32(data, bin)
		}
		err = os.WriteFile(binout, data, 0o644)
		if err != nil {
			return
		}
		if verbose {
			log.Printf("%v: %d words", binout, len(bins))
		}
	}

	return
}
