// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

// Package proto defines the serial protocol spoken between the host
// and the ROM loader firmware. The firmware side is generated from
// these definitions by "hackasm protogen".
package proto

const ProtocolVersion = 2

// Commands. The loader acks a command by returning its complement.
const (
	CmdBase      = 0xE0
	CmdSync      = 0xE1 // no arguments
	CmdGetVer    = 0xE2 // no arguments, 1 byte fixed response
	CmdSetAddr   = 0xE3 // 2 bytes: address high, address low
	CmdWritePage = 0xE4 // 1 byte word count, then counted bytes
	CmdRun       = 0xE5 // no arguments; release reset on the CPU
	CmdStop      = 0xE6 // no arguments; hold the CPU in reset
	CmdLast      = CmdStop
)

// Largest number of words in one WritePage command. The count is sent
// as a byte and each word takes two, low byte first.
const MaxPageWords = 128

func Ack(cmd byte) byte {
	return ^cmd
}

type Command struct {
	Name     string
	Value    byte
	ArgBytes int
	Counted  bool
}

var Commands = []Command{
	{"Sync", CmdSync, 0, false},
	{"GetVer", CmdGetVer, 0, false},
	{"SetAddr", CmdSetAddr, 2, false},
	{"WritePage", CmdWritePage, 1, true},
	{"Run", CmdRun, 0, false},
	{"Stop", CmdStop, 0, false},
}
