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

// Package hackfile reads and writes Hack machine code artifacts. The
// binary form is two bytes per word, little-endian, with no header. The
// text form is one line per word of sixteen '0' and '1' characters,
// most significant bit first.

package hackfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

type Format int

const (
	Binary Format = iota
	Text
)

var formatToString = []string{
	"binary",
	"text",
}

func (f Format) String() string {
	return formatToString[f]
}

const WordBits = 16

func WriteBinary(w io.Writer, words []uint16) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, words); err != nil {
		return err
	}
	return bw.Flush()
}

func ReadBinary(r io.Reader) ([]uint16, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(content)%2 != 0 {
		return nil, fmt.Errorf("binary image has odd length %d", len(content))
	}
	words := make([]uint16, len(content)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(content[2*i:])
	}
	return words, nil
}

func WriteText(w io.Writer, words []uint16) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintf(bw, "%016b\n", word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseText reads the text form. Blank lines are skipped; any other
// line must be exactly sixteen binary digits.
func ParseText(r io.Reader) ([]uint16, error) {
	var words []uint16
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(line) != WordBits {
			return nil, fmt.Errorf("line %d: expected %d bits, found %d", lineNum, WordBits, len(line))
		}
		n, err := strconv.ParseUint(line, 2, WordBits)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		words = append(words, uint16(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Render copies a binary image to its text form.
func Render(r io.Reader, w io.Writer) error {
	words, err := ReadBinary(r)
	if err != nil {
		return err
	}
	return WriteText(w, words)
}

func Read(r io.Reader, format Format) ([]uint16, error) {
	if format == Text {
		return ParseText(r)
	}
	return ReadBinary(r)
}

// ObjectPath turns Prog.asm into Prog.hack.
func ObjectPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + ".hack"
}

// CharPath turns Prog.hack into ProgChar.hack, the name used for the
// text rendering of a binary image.
func CharPath(objectPath string) string {
	ext := filepath.Ext(objectPath)
	return strings.TrimSuffix(objectPath, ext) + "Char" + ext
}
