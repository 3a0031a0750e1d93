// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

package host

// Connection setup with the ROM loader.

// Sleeps occur only here, while a connection is being established,
// and they are long (one to three seconds).

import (
	"fmt"
	"log"
	"time"

	"github.com/gmofishsauce/hackasm/pkg/arduino"
	sp "github.com/gmofishsauce/hackasm/pkg/proto"
)

func establishConnection(nano *arduino.Arduino, wasReset bool) error {
	if wasReset {
		time.Sleep(3 * time.Second)
	} else {
		if err := drain(nano); err != nil {
			return err
		}
	}
	if err := getSyncResponse(nano); err != nil {
		return err
	}
	if err := checkProtocolVersion(nano); err != nil {
		return err
	}
	if debug {
		log.Println("protocol version OK")
	}
	return nil
}

// The loader never sends more than an ack and a few response bytes
// without being asked. Anything still arriving after a few hundred
// reads means it is babbling.
func drain(nano *arduino.Arduino) error {
	for i := 0; i < 300; i++ {
		if _, err := nano.ReadFor(responseDelay); err != nil {
			if debug {
				log.Println("loader is drained")
			}
			return nil
		}
	}
	return fmt.Errorf("loader is transmitting continuously")
}

// Slowly send syncs until one is acked, then swallow any late acks
// for the earlier ones.
func getSyncResponse(nano *arduino.Arduino) error {
	nSent := 0
	tries := 3

	for i := 0; i < tries; i++ {
		err := doCommand(nano, sp.CmdSync)
		nSent++
		if err != nil {
			log.Printf("sync command failed: %s\n", err.Error())
		} else {
			for nSent--; nSent > 0; nSent-- {
				nano.ReadFor(responseDelay)
			}
			return nil
		}
		time.Sleep(1 * time.Second)
	}

	return fmt.Errorf("failed to synchronize")
}

func checkProtocolVersion(nano *arduino.Arduino) error {
	b, err := doFixedCommand(nano, []byte{sp.CmdGetVer}, 1)
	if err != nil {
		return err
	}
	if b[0] != sp.ProtocolVersion {
		return fmt.Errorf("protocol version mismatch: host 0x%02X, loader 0x%02X",
			sp.ProtocolVersion, b[0])
	}
	return nil
}
