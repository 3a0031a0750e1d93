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

// Package asm is the assembler for the Hack computer. Source text is
// filtered to one statement per line, labels and variables are resolved
// in two passes, and each remaining line is encoded as one 16-bit word.
// The package does no file handling of its own; the caller supplies a
// reader for the source and decides where the words go.

package asm

import (
	"io"
	"log"
)

var debug bool = false

func SetDebug(setting bool) {
	debug = setting
}

type Options struct {
	// Reject A-instruction addresses above 0x7FFF. By default they are
	// accepted and alias into the C-instruction encoding space.
	Strict bool
}

// Program is the result of a successful assembly.
type Program struct {
	Name      string
	Words     []uint16
	Symbols   SymbolTable
	Labels    []string // in order of definition
	Variables []string // in order of allocation, from address 16
	Resolved  []string // the resolved source, one line per word
}

// Assemble translates the source read from src. The name is used
// only in diagnostics.
func Assemble(src io.Reader, name string, opts Options) (*Program, error) {
	gs := newGlobalState(src, name)
	gs.strict = opts.Strict

	filtered, err := filter(gs.reader)
	if err != nil {
		return nil, err
	}
	code, err := collectLabels(gs, filtered)
	if err != nil {
		return nil, err
	}
	resolved := resolveSymbols(gs, code)
	if debug {
		log.Printf("%s: %d instructions, %d labels, %d variables",
			name, len(resolved), len(gs.labels), len(gs.variables))
	}

	words, err := encode(resolved, gs.strict)
	if err != nil {
		return nil, err
	}

	p := &Program{
		Name:      name,
		Words:     words,
		Symbols:   gs.symbols,
		Labels:    gs.labels,
		Variables: gs.variables,
		Resolved:  make([]string, len(resolved)),
	}
	for i, sl := range resolved {
		p.Resolved[i] = sl.text
	}
	return p, nil
}
