// Copyright (c) Jeff Berkowitz 2021, 2023. All rights reserved.

// Package host drives the ROM loader: it connects to the loader over
// the serial link and downloads a program image into the Hack ROM.
package host

import (
	"fmt"
	"os"

	"github.com/gmofishsauce/hackasm/pkg/arduino"
	sp "github.com/gmofishsauce/hackasm/pkg/proto"
)

const ROMWords = 0x8000

// The loader writes pages starting at the current address and leaves
// the address just past the last word written.

// Download writes words into ROM starting at address 0. The CPU is
// held in reset during the download and released afterwards if run
// is true.
func Download(nano *arduino.Arduino, words []uint16, run bool) error {
	if len(words) > ROMWords {
		return fmt.Errorf("image of %d words does not fit in ROM", len(words))
	}
	if err := establishConnection(nano, false); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := doCommand(nano, sp.CmdStop); err != nil {
		return fmt.Errorf("stop: %w", err)
	}

	progress := newProgress(os.Stdout, len(words))
	for base := 0; base < len(words); base += sp.MaxPageWords {
		end := base + sp.MaxPageWords
		if end > len(words) {
			end = len(words)
		}
		if err := setAddress(nano, uint16(base)); err != nil {
			return fmt.Errorf("address 0x%04X: %w", base, err)
		}
		if err := writePage(nano, words[base:end]); err != nil {
			return fmt.Errorf("page at 0x%04X: %w", base, err)
		}
		progress.update(end)
	}
	progress.finish()

	if run {
		if err := doCommand(nano, sp.CmdRun); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

func setAddress(nano *arduino.Arduino, addr uint16) error {
	_, err := doFixedCommand(nano, []byte{sp.CmdSetAddr, byte(addr >> 8), byte(addr)}, 0)
	return err
}

// Words go low byte first, as in the binary image.
func writePage(nano *arduino.Arduino, page []uint16) error {
	if len(page) == 0 || len(page) > sp.MaxPageWords {
		return fmt.Errorf("invalid page size %d", len(page))
	}
	counted := make([]byte, 0, 2*len(page))
	for _, w := range page {
		counted = append(counted, byte(w), byte(w>>8))
	}
	return doCountedSend(nano, []byte{sp.CmdWritePage, byte(len(page))}, counted)
}
