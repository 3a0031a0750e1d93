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

// UnresolvedMnemonicError reports a dest, comp or jump field that is
// not in its table.
type UnresolvedMnemonicError struct {
	Field    Field
	Mnemonic string
	Text     string // the offending line, after filtering
	Line     int
}

func (e *UnresolvedMnemonicError) Error() string {
	return fmt.Sprintf("line %d: %s: unknown %s mnemonic \"%s\"", e.Line, e.Text, e.Field, e.Mnemonic)
}

// MalformedAddressError reports an A-instruction whose operand is not
// an unsigned decimal that fits in a word.
type MalformedAddressError struct {
	Text string
	Line int
	Err  error
}

func (e *MalformedAddressError) Error() string {
	return fmt.Sprintf("line %d: %s: malformed address: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedAddressError) Unwrap() error {
	return e.Err
}

// AddressOutOfRangeError is returned only in strict mode, for an
// address that would set the instruction kind bit.
type AddressOutOfRangeError struct {
	Value uint16
	Text  string
	Line  int
}

func (e *AddressOutOfRangeError) Error() string {
	return fmt.Sprintf("line %d: %s: address %d exceeds 0x%04X", e.Line, e.Text, e.Value, maxAddress)
}

// MalformedLabelError reports a label definition with no closing
// parenthesis or an empty name.
type MalformedLabelError struct {
	Text string
	Line int
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("line %d: %s: malformed label definition", e.Line, e.Text)
}
