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

// Encode resolved lines into words. The first failure ends the run and
// no words are returned.
func encode(lines []sourceLine, strict bool) ([]uint16, error) {
	words := make([]uint16, 0, len(lines))
	for _, sl := range lines {
		w, err := encodeLine(sl, strict)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func encodeLine(sl sourceLine, strict bool) (uint16, error) {
	if sl.isAddress() {
		return parseAddress(sl, strict)
	}

	dest, comp, jump := splitC(sl.text)
	word := uint16(cInstructionPrefix)
	for i, mnemonic := range [...]string{dest, comp, jump} {
		f := Field(i)
		code, ok := f.table()[mnemonic]
		if !ok {
			return 0, &UnresolvedMnemonicError{f, mnemonic, sl.text, sl.line}
		}
		word |= code
	}
	return word, nil
}
