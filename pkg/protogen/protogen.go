// Copyright (c) Jeff Berkowitz 2022. All rights reserved.

// Package protogen writes the ROM loader protocol definitions as a C
// header for the loader firmware, so both sides share one source.
package protogen

import (
	"fmt"
	"io"
	"strings"

	sp "github.com/gmofishsauce/hackasm/pkg/proto"
)

const HeaderName = "loader_protocol.h"

func Generate(w io.Writer) error {
	guard := strings.ToUpper(strings.ReplaceAll(HeaderName, ".", "_"))
	var b strings.Builder
	fmt.Fprintf(&b, "// Generated by hackasm protogen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(&b, "#define PROTOCOL_VERSION 0x%02X\n", sp.ProtocolVersion)
	fmt.Fprintf(&b, "#define MAX_PAGE_WORDS %d\n\n", sp.MaxPageWords)
	for _, c := range sp.Commands {
		fmt.Fprintf(&b, "#define CMD_%s 0x%02X // %d arg bytes", macroName(c.Name), c.Value, c.ArgBytes)
		if c.Counted {
			b.WriteString(", counted")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n#define ACK(cmd) ((unsigned char)~(cmd))\n")
	fmt.Fprintf(&b, "\n#endif // %s\n", guard)
	_, err := io.WriteString(w, b.String())
	return err
}

// GetVer -> GET_VER
func macroName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
