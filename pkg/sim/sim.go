/*
Copyright © 2023 Jeff Berkowitz (pdxjjb@gmail.com)

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

// Package sim defines the Hack simulator. It runs an image of machine
// words one instruction per cycle.

package sim

import (
	"errors"
	"fmt"
	"log"
)

const (
	ScreenBase = 0x4000
	Keyboard   = 0x6000
	RAMSize    = Keyboard + 1
)

// Instruction fields
const (
	cBit      = 0x8000
	aBit      = 0x1000
	compShift = 6
	destA     = 0x20
	destD     = 0x10
	destM     = 0x08
	jumpLT    = 0x4
	jumpEQ    = 0x2
	jumpGT    = 0x1
)

// ALU control bits, after shifting the comp field down
const (
	zx = 0x20
	nx = 0x10
	zy = 0x08
	ny = 0x04
	fn = 0x02
	no = 0x01
)

var ErrHalted = errors.New("halted")

type CycleLimitError uint64

func (cle CycleLimitError) Error() string {
	return fmt.Sprintf("no halt after %d cycles", uint64(cle))
}

type BadAddressError struct {
	PC   uint16
	Addr uint16
}

func (bae *BadAddressError) Error() string {
	return fmt.Sprintf("pc %d: memory address %d out of range", bae.PC, bae.Addr)
}

var debug bool = false

func SetDebug(setting bool) {
	debug = setting
}

type Engine struct {
	rom []uint16
	ram []uint16

	a  uint16
	d  uint16
	pc uint16

	cycles uint64
	halted bool
}

func NewEngine(rom []uint16) *Engine {
	return &Engine{
		rom: rom,
		ram: make([]uint16, RAMSize),
	}
}

func (e *Engine) A() uint16 {
	return e.a
}

func (e *Engine) D() uint16 {
	return e.d
}

func (e *Engine) PC() uint16 {
	return e.pc
}

func (e *Engine) Cycles() uint64 {
	return e.cycles
}

func (e *Engine) Halted() bool {
	return e.halted
}

func (e *Engine) Peek(addr uint16) (uint16, error) {
	if int(addr) >= len(e.ram) {
		return 0, &BadAddressError{e.pc, addr}
	}
	return e.ram[addr], nil
}

func (e *Engine) Poke(addr uint16, val uint16) error {
	if int(addr) >= len(e.ram) {
		return &BadAddressError{e.pc, addr}
	}
	e.ram[addr] = val
	return nil
}

// SetKey presents a key code on the keyboard register.
func (e *Engine) SetKey(code uint16) {
	e.ram[Keyboard] = code
}

// Reset clears the registers and restarts at address 0. RAM is kept.
func (e *Engine) Reset() {
	e.a, e.d, e.pc = 0, 0, 0
	e.cycles = 0
	e.halted = false
}

// Step executes one instruction. The engine halts when the PC leaves
// the ROM or on a jump with no destination back to an A-instruction
// that loads its own address, the "(END) @END 0;JMP" idiom.
func (e *Engine) Step() error {
	if e.halted {
		return ErrHalted
	}
	if int(e.pc) >= len(e.rom) {
		e.halted = true
		return ErrHalted
	}
	ir := e.rom[e.pc]
	e.cycles++

	if ir&cBit == 0 {
		e.a = ir
		e.pc++
		return nil
	}

	y := e.a
	if ir&aBit != 0 {
		m, err := e.Peek(e.a)
		if err != nil {
			return err
		}
		y = m
	}
	out := alu(e.d, y, (ir>>compShift)&0x3F)

	// M is written through the old A
	if ir&destM != 0 {
		if err := e.Poke(e.a, out); err != nil {
			return err
		}
	}
	target := e.a
	if ir&destA != 0 {
		e.a = out
	}
	if ir&destD != 0 {
		e.d = out
	}

	if jump(ir, out) {
		if ir&(destA|destD|destM) == 0 && e.pc > 0 && e.rom[e.pc-1] == e.pc-1 && target == e.pc-1 {
			e.halted = true
			if debug {
				log.Printf("halt at %d after %d cycles", e.pc-1, e.cycles)
			}
		}
		e.pc = target
		return nil
	}
	e.pc++
	return nil
}

// Run steps until the engine halts or maxCycles have been executed.
// It returns the number of cycles executed by this call.
func (e *Engine) Run(maxCycles uint64) (uint64, error) {
	start := e.cycles
	for e.cycles-start < maxCycles {
		if err := e.Step(); err != nil {
			if errors.Is(err, ErrHalted) {
				return e.cycles - start, nil
			}
			return e.cycles - start, err
		}
		if e.halted {
			return e.cycles - start, nil
		}
	}
	return e.cycles - start, CycleLimitError(maxCycles)
}

func alu(x, y, c uint16) uint16 {
	if c&zx != 0 {
		x = 0
	}
	if c&nx != 0 {
		x = ^x
	}
	if c&zy != 0 {
		y = 0
	}
	if c&ny != 0 {
		y = ^y
	}
	var out uint16
	if c&fn != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if c&no != 0 {
		out = ^out
	}
	return out
}

func jump(ir, out uint16) bool {
	neg := int16(out) < 0
	zero := out == 0
	return (ir&jumpLT != 0 && neg) ||
		(ir&jumpEQ != 0 && zero) ||
		(ir&jumpGT != 0 && !neg && !zero)
}
