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
	"io"
	"log"
	"strings"
)

// The filter is a four state machine that drops comments and
// insignificant whitespace, leaving one logical line per statement.
// A single slash opens a comment; "//" works only because the first
// slash already did.

// Filter states
const (
	stNewline = iota
	stInstruction
	stComment
	stLabelDefine
)

var stateToString = []string{
	"newline",
	"instruction",
	"comment",
	"label",
}

// A sourceLine is one filtered statement and the source line it
// started on.
type sourceLine struct {
	text string
	line int
}

func (sl sourceLine) isLabel() bool {
	return strings.HasPrefix(sl.text, "(")
}

func (sl sourceLine) isAddress() bool {
	return strings.HasPrefix(sl.text, "@")
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isControl(b byte) bool {
	return b < 0x20 || b == 0x7F
}

func filter(r *nameLineByteReader) ([]sourceLine, error) {
	var lines []sourceLine
	var sb strings.Builder
	state := stNewline
	start := 0

	terminate := func() {
		if sb.Len() > 0 {
			lines = append(lines, sourceLine{sb.String(), start})
			sb.Reset()
		}
	}

	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch state {
		case stNewline:
			switch {
			case b == '/':
				state = stComment
			case b == '@' || isAlnum(b):
				state = stInstruction
				start = r.line()
				sb.WriteByte(b)
			case b == '(':
				state = stLabelDefine
				start = r.line()
				sb.WriteByte(b)
			}
		case stComment:
			if b == NL {
				state = stNewline
			}
		case stInstruction:
			switch {
			case b == '/':
				state = stComment
				terminate()
			case b == NL:
				state = stNewline
				terminate()
			case isControl(b) || b == ' ':
			default:
				sb.WriteByte(b)
			}
		case stLabelDefine:
			switch {
			case b == NL:
				state = stNewline
				terminate()
			case isControl(b):
			default:
				sb.WriteByte(b)
			}
		}
	}
	terminate()
	if debug {
		log.Printf("%s: filtered to %d lines, final state %s", r.name(), len(lines), stateToString[state])
	}
	return lines, nil
}

// StripComments copies src to dst with comments and insignificant
// whitespace removed, one statement per newline-terminated line.
func StripComments(src io.Reader, dst io.Writer) error {
	lines, err := filter(newNameLineByteReader("", src))
	if err != nil {
		return err
	}
	for _, sl := range lines {
		if _, err := io.WriteString(dst, sl.text+"\n"); err != nil {
			return err
		}
	}
	return nil
}
