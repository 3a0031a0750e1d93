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
	"errors"
	"strconv"
	"strings"
)

// Largest address an A-instruction can carry without setting bit 15.
const maxAddress = 0x7FFF

var errEmptyAddress = errors.New("empty operand")

// An operand made only of decimal digits is a literal. The empty
// operand counts, and is rejected later by parseAddress.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// The name of a label is whatever lies between the open paren and the
// first close paren. Anything after the close paren is ignored.
func labelName(sl sourceLine) (string, error) {
	end := strings.IndexByte(sl.text, ')')
	if end < 0 {
		return "", &MalformedLabelError{sl.text, sl.line}
	}
	name := strings.TrimSpace(sl.text[1:end])
	if name == "" {
		return "", &MalformedLabelError{sl.text, sl.line}
	}
	return name, nil
}

// Split dest=comp;jump. The jump is whatever follows the first
// semicolon and the dest whatever precedes the first equals sign
// of the remainder. Absent fields are empty.
func splitC(text string) (dest, comp, jump string) {
	comp = text
	if i := strings.IndexByte(comp, ';'); i >= 0 {
		jump = comp[i+1:]
		comp = comp[:i]
	}
	if i := strings.IndexByte(comp, '='); i >= 0 {
		dest = comp[:i]
		comp = comp[i+1:]
	}
	return dest, comp, jump
}

func parseAddress(sl sourceLine, strict bool) (uint16, error) {
	operand := sl.text[1:]
	if operand == "" {
		return 0, &MalformedAddressError{sl.text, sl.line, errEmptyAddress}
	}
	if !isNumeric(operand) {
		return 0, &MalformedAddressError{sl.text, sl.line, strconv.ErrSyntax}
	}
	n, err := strconv.ParseUint(operand, 10, 16)
	if err != nil {
		return 0, &MalformedAddressError{sl.text, sl.line, err}
	}
	if strict && n > maxAddress {
		return 0, &AddressOutOfRangeError{uint16(n), sl.text, sl.line}
	}
	return uint16(n), nil
}
