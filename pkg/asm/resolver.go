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

import "strconv"

// Symbols are resolved in two complete passes. Every label must be
// known before the first variable is allocated, otherwise a forward
// reference to a label would be taken for a variable.

// Pass 1. Bind each label to the index of the instruction that follows
// it and drop the label lines. Labels and comments do not count.
func collectLabels(gs *globalState, lines []sourceLine) ([]sourceLine, error) {
	result := make([]sourceLine, 0, len(lines))
	for _, sl := range lines {
		if sl.isLabel() {
			name, err := labelName(sl)
			if err != nil {
				return nil, err
			}
			gs.symbols.define(name, len(result), Label)
			gs.labels = append(gs.labels, name)
			continue
		}
		result = append(result, sl)
	}
	return result, nil
}

// Pass 2. Replace every symbolic operand with its address. A name that
// is not yet in the table is a variable and gets the next free word
// from 16 up.
func resolveSymbols(gs *globalState, lines []sourceLine) []sourceLine {
	next := firstVariableAddress
	result := make([]sourceLine, 0, len(lines))
	for _, sl := range lines {
		if !sl.isAddress() || isNumeric(sl.text[1:]) {
			result = append(result, sl)
			continue
		}
		operand := sl.text[1:]
		addr, found := gs.symbols.Lookup(operand)
		if !found {
			addr = next
			gs.symbols.define(operand, addr, Variable)
			gs.variables = append(gs.variables, operand)
			next++
		}
		result = append(result, sourceLine{"@" + strconv.Itoa(addr), sl.line})
	}
	return result
}
