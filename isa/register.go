// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/rvbasm/internal"
)

// Register is a 5-bit integer register number.
type Register uint8

// abiNames are the canonical register names, indexed by register number.
var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// regAlias maps alternate spellings.
var regAlias = map[string]Register{
	"fp": 8, // s0 == fp
}

var regMap = func() map[string]Register {
	m := make(map[string]Register, len(abiNames)+len(regAlias))
	for n, name := range abiNames {
		m[name] = Register(n)
	}
	maps.Copy(m, regAlias)
	return m
}()

// LookupRegister resolves a register name, ignoring case.
func LookupRegister(name string) (reg Register, err error) {
	reg, ok := regMap[strings.ToLower(name)]
	if !ok {
		err = ErrRegisterUnknown(name)
		return
	}
	return
}

// regList is every register, in order.
var regList = func() (list []Register) {
	for n := range abiNames {
		list = append(list, Register(n))
	}
	return
}()

// Registers iterates over every accepted register spelling, the ABI names in
// register order followed by the aliases.
func Registers() iter.Seq2[string, Register] {
	return internal.Concat2(internal.Indexed(regList, Register.String), maps.All(regAlias))
}

// String returns the ABI name of the register.
func (reg Register) String() string {
	if int(reg) < len(abiNames) {
		return abiNames[reg]
	}
	return f("x%d", uint8(reg))
}
