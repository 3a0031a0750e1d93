// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

package host

// Command framing for the ROM loader.
//
// Every command is a command byte followed by a fixed number of
// argument bytes, the last of which may be a count. After the fixed
// bytes the loader acks (the complement of the command byte) or naks
// (anything else). A fixed response, if the command has one, follows
// the ack. Counted bytes follow an ack and are neither acked nor naked.

import (
	"fmt"
	"log"
	"time"

	"github.com/gmofishsauce/hackasm/pkg/arduino"
	sp "github.com/gmofishsauce/hackasm/pkg/proto"
)

const responseDelay = 20 * time.Millisecond

var debug = false

func SetDebug(setting bool) {
	debug = setting
}

type UnexpectedResponseError struct {
	Command  byte
	Response byte
}

func (u *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("command 0x%X: unexpected response 0x%X", u.Command, u.Response)
}

// Do a command with no arguments and no response.
func doCommand(nano *arduino.Arduino, cmd byte) error {
	_, err := doFixedCommand(nano, []byte{cmd}, 0)
	return err
}

func getAck(nano *arduino.Arduino, cmd byte) error {
	b, err := nano.ReadFor(responseDelay)
	if err != nil {
		return err
	}
	if b != sp.Ack(cmd) {
		return &UnexpectedResponseError{cmd, b}
	}
	return nil
}

// Send the fixed part of a command, wait for the ack, and read the
// fixed response if expected is nonzero. On a nak the response is
// empty and the error is non-nil. If the command has counted bytes the
// caller sends them only after a nil error.
func doFixedCommand(nano *arduino.Arduino, fixed []byte, expected int) ([]byte, error) {
	var response []byte

	if len(fixed) < 1 || len(fixed) > 8 {
		return response, fmt.Errorf("invalid fixed command length")
	}
	if expected < 0 || expected > 8 {
		return response, fmt.Errorf("invalid fixed response expected")
	}
	if debug {
		log.Printf("doFixedCommand: sending %v\n", fixed)
	}
	if err := nano.Write(fixed); err != nil {
		return response, err
	}
	if err := getAck(nano, fixed[0]); err != nil {
		return response, err
	}

	if expected > 0 {
		response = make([]byte, expected)
		for i := 0; i < expected; i++ {
			b, err := nano.ReadFor(responseDelay)
			if err != nil {
				return response, err
			}
			response[i] = b
		}
	}
	return response, nil
}

// Send a command whose fixed part ends in a count, then the counted
// bytes. For WritePage the count is in words, two bytes each.
func doCountedSend(nano *arduino.Arduino, fixed []byte, counted []byte) error {
	if debug {
		log.Printf("doCountedSend(): count %d, %d bytes\n", fixed[len(fixed)-1], len(counted))
	}
	if _, err := doFixedCommand(nano, fixed, 0); err != nil {
		return err
	}
	return nano.Write(counted)
}
