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

package asm

import (
	"bufio"
	"io"
	"sort"
)

const NL = byte('\n')

// A nameLineByteReader is a byte reader that knows the name of its
// source and the current line number within it. The line number is
// advanced as soon as a newline is returned. EOF is persistent.
type nameLineByteReader struct {
	sourceName   string
	sourceReader io.ByteReader
	sourceLine   int
	eof          bool
}

func newNameLineByteReader(name string, r io.Reader) *nameLineByteReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &nameLineByteReader{sourceName: name, sourceReader: br, sourceLine: 1}
}

func (nl *nameLineByteReader) ReadByte() (byte, error) {
	if nl.eof {
		return 0, io.EOF
	}
	b, err := nl.sourceReader.ReadByte()
	if err == io.EOF {
		nl.eof = true
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}
	if b == NL {
		nl.sourceLine++
	}
	return b, nil
}

func (nl *nameLineByteReader) line() int {
	return nl.sourceLine
}

func (nl *nameLineByteReader) name() string {
	return nl.sourceName
}

// -------
// Symbols
// -------

// SymbolKind records how a symbol entered the table.
type SymbolKind int

const (
	Predefined SymbolKind = iota
	Label
	Variable
)

var symbolKindToString = []string{
	"predefined",
	"label",
	"variable",
}

func (k SymbolKind) String() string {
	return symbolKindToString[k]
}

type Symbol struct {
	Name  string
	Value int
	Kind  SymbolKind
}

// ------------
// Symbol table
// ------------

// A SymbolTable maps case-sensitive names to addresses. Labels and
// variables share the table with the predefined symbols, and the last
// definition of a name wins.
type SymbolTable map[string]*Symbol

// NewSymbolTable returns a table holding only the predefined symbols.
func NewSymbolTable() SymbolTable {
	st := make(SymbolTable)
	registerPredefined(st)
	return st
}

func (st SymbolTable) define(name string, value int, kind SymbolKind) {
	st[name] = &Symbol{name, value, kind}
}

// Lookup returns the address bound to name.
func (st SymbolTable) Lookup(name string) (int, bool) {
	sym, ok := st[name]
	if !ok {
		return 0, false
	}
	return sym.Value, true
}

// Names returns the names of all symbols of the given kinds, sorted.
// With no kinds, every name is returned.
func (st SymbolTable) Names(kinds ...SymbolKind) []string {
	names := make([]string, 0, len(st))
	for n, sym := range st {
		if len(kinds) == 0 || hasKind(kinds, sym.Kind) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func hasKind(kinds []SymbolKind, k SymbolKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// -----------------------
// State of the assembler.
// -----------------------

type globalState struct {
	reader    *nameLineByteReader
	symbols   SymbolTable
	strict    bool
	labels    []string // in order of definition
	variables []string // in order of allocation
}

func newGlobalState(reader io.Reader, mainSourceFile string) *globalState {
	gs := &globalState{}
	gs.reader = newNameLineByteReader(mainSourceFile, reader)
	gs.symbols = NewSymbolTable()
	return gs
}
