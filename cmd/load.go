/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/gmofishsauce/hackasm/pkg/arduino"
	"github.com/gmofishsauce/hackasm/pkg/host"
)

var loadFlags struct {
	port string
	baud int
	text bool
	run  bool
}

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load imageFile",
	Short: "Download an image to the Arduino ROM loader",
	Long: `Load opens the serial line to the Arduino Nano which controls the
ROM loader, stops the target, and writes the image into ROM in pages.
With --run the target is started at address 0 afterwards. The serial
port is released when the command exits, so the Arduino firmware may
be updated from the Arduino tools between loads.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return load(args[0])
	},
}

func load(path string) error {
	words, err := readImage(path, loadFlags.text)
	if err != nil {
		return err
	}

	nano, err := arduino.New(loadFlags.port, loadFlags.baud)
	if err != nil {
		return fmt.Errorf("%s: %w", loadFlags.port, err)
	}
	atexit.Register(func() {
		nano.Close()
	})

	if err := host.Download(nano, words, loadFlags.run); err != nil {
		return err
	}
	fmt.Printf("%s: loaded %d words\n", path, len(words))
	return nil
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVarP(&loadFlags.port, "port", "p", "/dev/cu.usbserial-AQ0169PT", "serial device of the Arduino")
	loadCmd.Flags().IntVarP(&loadFlags.baud, "baud", "b", 115200, "serial line speed")
	loadCmd.Flags().BoolVarP(&loadFlags.text, "text", "t", false, "image is in text form")
	loadCmd.Flags().BoolVarP(&loadFlags.run, "run", "r", false, "start the target after loading")
}
