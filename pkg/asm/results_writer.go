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
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gmofishsauce/hackasm/pkg/hackfile"
)

// Write the words of a successful run in the requested format.
func WriteResults(w io.Writer, p *Program, format hackfile.Format) error {
	switch format {
	case hackfile.Binary:
		return hackfile.WriteBinary(w, p.Words)
	case hackfile.Text:
		return hackfile.WriteText(w, p.Words)
	}
	return fmt.Errorf("unknown output format %d", format)
}

// Write the user-defined symbols, labels and variables, as a table.
// Predefined symbols are listed only where a label shadowed them.
func WriteSymbols(w io.Writer, symbols SymbolTable) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Symbol", "Kind", "Value"})
	for _, n := range symbols.Names(Label, Variable) {
		sym := symbols[n]
		t.AppendRow(table.Row{n, sym.Kind, sym.Value})
	}
	t.Render()
}

// Write one line per word: address, hex value and the resolved source.
func WriteListing(w io.Writer, p *Program) error {
	for i, word := range p.Words {
		src := ""
		if i < len(p.Resolved) {
			src = p.Resolved[i]
		}
		if _, err := fmt.Fprintf(w, "%05d  %04X  %s\n", i, word, src); err != nil {
			return err
		}
	}
	return nil
}
