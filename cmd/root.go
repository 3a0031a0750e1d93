/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)
*/
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/gmofishsauce/hackasm/pkg/arduino"
	"github.com/gmofishsauce/hackasm/pkg/asm"
	"github.com/gmofishsauce/hackasm/pkg/host"
	"github.com/gmofishsauce/hackasm/pkg/sim"
)

var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hackasm",
	Short: "Assembler and tools for the Hack computer",
	Long: `Hackasm translates Hack assembly language into the 16-bit machine
words executed by the Hack CPU, and provides tools to inspect, simulate
and download the resulting images.

An image is written as two bytes per word, low byte first. The text
form has one line of sixteen '0' and '1' characters per word.`,

	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.Lmsgprefix | log.Lmicroseconds)
		log.SetPrefix(cmd.Name() + ": ")
		asm.SetDebug(debug)
		sim.SetDebug(debug)
		host.SetDebug(debug)
		arduino.SetDebug(debug)
	},
}

// Execute adds all child commands to the root command and runs it.
// The process always exits through atexit so that cleanup handlers,
// such as the removal of partial output files, are run.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log internal details")
	rootCmd.SetOut(os.Stdout)
}
