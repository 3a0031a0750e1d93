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

import "fmt"

// Base of the variable area. R0 through R15 occupy the words below it.
const firstVariableAddress = 16

const (
	screenAddress   = 16384
	keyboardAddress = 24576
)

// The predefined symbols. SP, LCL, ARG, THIS and THAT alias R0..R4.
var predefinedSymbols = []struct {
	name  string
	value int
}{
	{"SP", 0},
	{"LCL", 1},
	{"ARG", 2},
	{"THIS", 3},
	{"THAT", 4},
	{"SCREEN", screenAddress},
	{"KBD", keyboardAddress},
}

func registerPredefined(st SymbolTable) {
	for r := 0; r < 16; r++ {
		st.define(fmt.Sprintf("R%d", r), r, Predefined)
	}
	for _, p := range predefinedSymbols {
		st.define(p.name, p.value, Predefined)
	}
}
