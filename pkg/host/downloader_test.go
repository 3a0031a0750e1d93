// Copyright (c) Jeff Berkowitz 2021, 2023. All rights reserved.

package host

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmofishsauce/hackasm/pkg/arduino"
	sp "github.com/gmofishsauce/hackasm/pkg/proto"
)

// fakeLoader plays the loader firmware's side of the protocol.
type fakeLoader struct {
	rom     [ROMWords]uint16
	addr    int
	version byte
	running bool
	nak     byte // command to nak, if nonzero

	pending []byte // bytes of the command being received
	counted int    // counted bytes still expected
	page    []byte
	out     []byte // bytes waiting to be read by the host
	log     []byte // commands received, in order
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{version: sp.ProtocolVersion, running: true}
}

func argBytes(cmd byte) int {
	for _, c := range sp.Commands {
		if c.Value == cmd {
			return c.ArgBytes
		}
	}
	return 0
}

func (f *fakeLoader) Read(p []byte) (int, error) {
	if len(f.out) == 0 {
		return 0, nil
	}
	p[0] = f.out[0]
	f.out = f.out[1:]
	return 1, nil
}

func (f *fakeLoader) Write(p []byte) (int, error) {
	for _, b := range p {
		f.receive(b)
	}
	return len(p), nil
}

func (f *fakeLoader) SetReadTimeout(t time.Duration) error {
	return nil
}

func (f *fakeLoader) Close() error {
	return nil
}

func (f *fakeLoader) receive(b byte) {
	if f.counted > 0 {
		f.page = append(f.page, b)
		f.counted--
		if f.counted == 0 {
			for i := 0; i < len(f.page); i += 2 {
				f.rom[f.addr] = uint16(f.page[i]) | uint16(f.page[i+1])<<8
				f.addr++
			}
			f.page = nil
		}
		return
	}

	f.pending = append(f.pending, b)
	cmd := f.pending[0]
	if len(f.pending) < 1+argBytes(cmd) {
		return
	}
	args := f.pending[1:]
	f.pending = nil
	f.log = append(f.log, cmd)

	if cmd == f.nak {
		f.out = append(f.out, 0)
		return
	}
	f.out = append(f.out, sp.Ack(cmd))
	switch cmd {
	case sp.CmdGetVer:
		f.out = append(f.out, f.version)
	case sp.CmdSetAddr:
		f.addr = int(args[0])<<8 | int(args[1])
	case sp.CmdWritePage:
		f.counted = 2 * int(args[0])
	case sp.CmdRun:
		f.running = true
	case sp.CmdStop:
		f.running = false
	}
}

func image(n int) []uint16 {
	words := make([]uint16, n)
	for i := range words {
		words[i] = uint16(0xE000 | i)
	}
	return words
}

func TestDownload1(t *testing.T) {
	fake := newFakeLoader()
	words := []uint16{0x0002, 0xEC10, 0x0003, 0xE090, 0x0000, 0xE308}
	require.NoError(t, Download(arduino.NewFromPort(fake), words, false))
	assert.Equal(t, words, fake.rom[:len(words)])
	assert.False(t, fake.running)
	assert.Equal(t, []byte{sp.CmdSync, sp.CmdGetVer, sp.CmdStop, sp.CmdSetAddr, sp.CmdWritePage}, fake.log)
}

func TestDownload2(t *testing.T) {
	fake := newFakeLoader()
	words := image(2*sp.MaxPageWords + 5)
	require.NoError(t, Download(arduino.NewFromPort(fake), words, true))
	assert.Equal(t, words, fake.rom[:len(words)])
	assert.Equal(t, uint16(0), fake.rom[len(words)])
	assert.True(t, fake.running)

	pages := 0
	for _, cmd := range fake.log {
		if cmd == sp.CmdWritePage {
			pages++
		}
	}
	assert.Equal(t, 3, pages)
	assert.Equal(t, byte(sp.CmdRun), fake.log[len(fake.log)-1])
}

func TestDownloadVersionMismatch(t *testing.T) {
	fake := newFakeLoader()
	fake.version = sp.ProtocolVersion + 1
	err := Download(arduino.NewFromPort(fake), image(4), false)
	assert.ErrorContains(t, err, "protocol version mismatch")
}

func TestDownloadNak(t *testing.T) {
	fake := newFakeLoader()
	fake.nak = sp.CmdWritePage
	err := Download(arduino.NewFromPort(fake), image(4), false)
	var ure *UnexpectedResponseError
	require.True(t, errors.As(err, &ure))
	assert.Equal(t, byte(sp.CmdWritePage), ure.Command)
	assert.Equal(t, byte(0), ure.Response)
	assert.ErrorContains(t, err, "page at 0x0000")
}

func TestDownloadTooLarge(t *testing.T) {
	fake := newFakeLoader()
	err := Download(arduino.NewFromPort(fake), make([]uint16, ROMWords+1), false)
	assert.Error(t, err)
	assert.Empty(t, fake.log)
}

func TestWritePageSize(t *testing.T) {
	nano := arduino.NewFromPort(newFakeLoader())
	assert.Error(t, writePage(nano, nil))
	assert.Error(t, writePage(nano, make([]uint16, sp.MaxPageWords+1)))
}
