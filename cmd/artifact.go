/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/gmofishsauce/hackasm/pkg/hackfile"
)

// Create path and fill it with write. Until write and the close
// succeed the file is only provisional: an exit handler removes it, so
// a failed run never leaves a partial artifact behind.
func writeArtifact(path string, write func(w io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	committed := false
	atexit.Register(func() {
		if !committed {
			log.Printf("removing partial output %s", path)
			os.Remove(path)
		}
	})

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	committed = true
	return nil
}

func readImage(path string, text bool) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := hackfile.Binary
	if text {
		format = hackfile.Text
	}
	words, err := hackfile.Read(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
