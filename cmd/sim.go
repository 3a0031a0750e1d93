/*
Copyright © 2023 Jeff Berkowitz (pdxjjb@gmail.com)
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/hackasm/pkg/sim"
)

var simFlags struct {
	text     bool
	cycles   uint64
	ramBase  uint16
	ramWords uint16
}

// simCmd represents the sim command
var simCmd = &cobra.Command{
	Use:   "sim imageFile",
	Short: "The Hack simulator",
	Long: `Sim loads an image into ROM and executes it one instruction per
cycle until the program reaches its halt loop (a jump to itself) or the
cycle limit is reached. It then prints the registers and a window of
RAM.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulate(args[0])
	},
}

func simulate(path string) error {
	words, err := readImage(path, simFlags.text)
	if err != nil {
		return err
	}

	e := sim.NewEngine(words)
	n, runErr := e.Run(simFlags.cycles)
	if err := showState(os.Stdout, e, n); err != nil {
		return err
	}
	return runErr
}

func showState(w io.Writer, e *sim.Engine, cycles uint64) error {
	status := "running"
	if e.Halted() {
		status = "halted"
	}
	fmt.Fprintf(w, "%s after %d cycles: A=%d D=%d PC=%d\n", status, cycles, e.A(), e.D(), e.PC())

	if simFlags.ramWords == 0 {
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Address", "Hex", "Signed"})
	for i := uint16(0); i < simFlags.ramWords; i++ {
		addr := simFlags.ramBase + i
		v, err := e.Peek(addr)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{addr, fmt.Sprintf("%04X", v), int16(v)})
	}
	t.Render()
	return nil
}

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().BoolVarP(&simFlags.text, "text", "t", false, "image is in text form")
	simCmd.Flags().Uint64VarP(&simFlags.cycles, "cycles", "c", 1_000_000, "maximum cycles to execute")
	simCmd.Flags().Uint16Var(&simFlags.ramBase, "ram", 0, "first RAM address to print")
	simCmd.Flags().Uint16Var(&simFlags.ramWords, "words", 16, "number of RAM words to print")
}
