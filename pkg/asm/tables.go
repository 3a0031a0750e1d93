/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// A C-instruction is 111a cccc ccdd djjj. The three high bits mark the
// instruction kind. The a bit selects M rather than A as the ALU's y
// input; the six c bits are the ALU controls zx nx zy ny f no. The d
// bits choose the destinations A, D and M, and the j bits are the
// less-than, equal and greater-than jump conditions.
//
// The values below are already shifted into position, so a word is the
// OR of the prefix and one entry from each table. The tables are never
// written after initialization.

package asm

const cInstructionPrefix = 0xE000

var destTable = map[string]uint16{
	"":    0x0,
	"M":   0x8,
	"D":   0x10,
	"MD":  0x18,
	"A":   0x20,
	"AM":  0x28,
	"AD":  0x30,
	"AMD": 0x38,
}

var jumpTable = map[string]uint16{
	"":    0x0,
	"JGT": 0x1,
	"JEQ": 0x2,
	"JGE": 0x3,
	"JLT": 0x4,
	"JNE": 0x5,
	"JLE": 0x6,
	"JMP": 0x7,
}

var compTable = map[string]uint16{
	"0":  0xa80,
	"1":  0xfc0,
	"-1": 0xe80,
	"D":  0x300,
	"A":  0xc00,
	"M":  0x1c00,
	"!D": 0x340,
	"!A": 0xc40,
	"!M": 0x1c40,
	"-D": 0x3c0,
	"-A": 0xcc0,
	"-M": 0x1cc0,

	"D+1": 0x7c0,
	"A+1": 0xdc0,
	"M+1": 0x1dc0,
	"D-1": 0x380,
	"A-1": 0xc80,
	"M-1": 0x1c80,

	"D+A": 0x80,
	"D+M": 0x1080,
	"D-A": 0x4c0,
	"D-M": 0x14c0,
	"A-D": 0x1c0,
	"M-D": 0x11c0,
	"D&A": 0x0,
	"D&M": 0x1000,
	"D|A": 0x540,
	"D|M": 0x1540,
}

// Field identifies one of the three mnemonic fields of a C-instruction.
type Field int

const (
	FieldDest Field = iota
	FieldComp
	FieldJump
)

var fieldToString = []string{
	"dest",
	"comp",
	"jump",
}

func (f Field) String() string {
	return fieldToString[f]
}

func (f Field) table() map[string]uint16 {
	switch f {
	case FieldDest:
		return destTable
	case FieldComp:
		return compTable
	default:
		return jumpTable
	}
}
