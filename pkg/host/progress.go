// Copyright (c) Jeff Berkowitz 2021. All rights reserved.

package host

// Download progress. Progress is shown only when the output is an
// interactive terminal; redirected output gets the final line only.

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type progress struct {
	out         io.Writer
	interactive bool
	total       int
}

func newProgress(out *os.File, total int) *progress {
	return &progress{out, term.IsTerminal(int(out.Fd())), total}
}

func (p *progress) update(done int) {
	if p.interactive {
		fmt.Fprintf(p.out, "\rdownloading: %d/%d words", done, p.total)
	}
}

func (p *progress) finish() {
	if p.interactive {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintf(p.out, "download complete: %d words\n", p.total)
}
