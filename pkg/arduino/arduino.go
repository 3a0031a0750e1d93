// Copyright (c) Jeff Berkowitz 2021. All rights reserved.

// Package arduino provides a synchronous byte I/O interface to the
// Arduino that hosts the ROM loader. Opening the USB serial port raises
// DTR, which resets the Arduino, so New waits out the bootloader before
// returning.
//
// All reads use the read timeout of the serial port rather than a
// reader goroutine. The port object is not safe for concurrent use and
// everything here runs on the caller's goroutine.

package arduino

import (
	"fmt"
	"log"
	"syscall"
	"time"

	"go.bug.st/serial"
)

const resetDelay = 3 * time.Second

var debug bool = false

func SetDebug(setting bool) {
	debug = setting
}

// Port is the part of serial.Port used here.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

type Arduino struct {
	port Port
}

type NoResponseError time.Duration

func (nre NoResponseError) Error() string {
	return fmt.Sprintf("read from Arduino: no response after %v", time.Duration(nre))
}

// Public interface

func New(deviceName string, baudRate int) (*Arduino, error) {
	mode := &serial.Mode{BaudRate: baudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
	port, err := serial.Open(deviceName, mode)
	if err != nil {
		return nil, err
	}

	// The bootloader eats the first bytes after a reset while it
	// looks for a firmware upload.
	log.Println("serial port is open - delaying for reset")
	time.Sleep(resetDelay)
	return NewFromPort(port), nil
}

// NewFromPort wraps an already open port. No reset delay is applied.
func NewFromPort(port Port) *Arduino {
	return &Arduino{port: port}
}

// Read the Arduino until a byte is received or a timeout occurs
func (arduino *Arduino) ReadFor(timeout time.Duration) (byte, error) {
	return arduino.readByte(timeout)
}

// Write bytes to the Arduino.
func (arduino *Arduino) Write(b []byte) error {
	for _, c := range b {
		if err := arduino.writeByte(c); err != nil {
			return err
		}
	}
	return nil
}

// Close the connection to the Arduino.
func (arduino *Arduino) Close() error {
	return arduino.closeSerialPort()
}

// Implementation

func (arduino *Arduino) readByte(readTimeout time.Duration) (byte, error) {
	b := make([]byte, 1)
	var n int
	var err error

	if err = arduino.port.SetReadTimeout(readTimeout); err != nil {
		return 0, err
	}
	// The loop is only for EINTR, which the runtime's preemption
	// signals cause constantly.
	for {
		n, err = arduino.port.Read(b)
		if !isRetryableSyscallError(err) {
			break
		}
		if n != 0 {
			panic("bytes returned despite EINTR")
		}
	}
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, NoResponseError(readTimeout)
	}
	if debug {
		log.Printf("readByte: return 0x%X\n", b[0])
	}
	return b[0], nil
}

// A write that blocks forever means the loader stopped draining the
// line; there is no write timeout.
func (arduino *Arduino) writeByte(toWrite byte) error {
	if debug {
		log.Printf("writeByte: write 0x%X\n", toWrite)
	}
	b := []byte{toWrite}
	var n int
	var err error

	for {
		n, err = arduino.port.Write(b)
		if !isRetryableSyscallError(err) {
			break
		}
		if n != 0 {
			panic("bytes written despite EINTR")
		}
	}
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("write consumed 0 bytes")
	}
	return nil
}

func (arduino *Arduino) closeSerialPort() error {
	if arduino.port == nil {
		return fmt.Errorf("internal error: close(): port not open")
	}
	if err := arduino.port.Close(); err != nil {
		log.Printf("close serial port: %s", err)
		return err
	}
	log.Println("serial port closed")
	arduino.port = nil
	return nil
}

func isRetryableSyscallError(err error) bool {
	if errno, ok := err.(syscall.Errno); ok {
		return errno == syscall.EINTR
	}
	return false
}
