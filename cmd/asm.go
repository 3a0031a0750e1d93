/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/hackasm/pkg/asm"
	"github.com/gmofishsauce/hackasm/pkg/hackfile"
)

var asmFlags struct {
	out     string
	text    bool
	symbols bool
	listing bool
	strict  bool
}

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "The Hack assembler",
	Long: `Asm translates one Hack assembly language source file into a
machine code image. By default the image for Prog.asm is written to
Prog.hack in binary form, two bytes per word, low byte first.

Comments begin with a single slash and run to the end of the line.
Labels are written (NAME) and bind NAME to the address of the next
instruction. Any other symbol used as an address that is not predefined
is a variable and is allocated the next free word from address 16.

If assembly fails no image is left behind.
`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return assembleFile(args[0])
	},
}

func assembleFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	p, err := asm.Assemble(bufio.NewReader(src), path, asm.Options{Strict: asmFlags.strict})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if debug {
		pp.Println(p)
	}

	out := asmFlags.out
	if out == "" {
		out = hackfile.ObjectPath(path)
	}
	format := hackfile.Binary
	if asmFlags.text {
		format = hackfile.Text
	}
	err = writeArtifact(out, func(w io.Writer) error {
		return asm.WriteResults(w, p, format)
	})
	if err != nil {
		return err
	}

	if asmFlags.listing {
		if err := asm.WriteListing(os.Stdout, p); err != nil {
			return err
		}
	}
	if asmFlags.symbols {
		asm.WriteSymbols(os.Stdout, p.Symbols)
	}
	if out != "-" {
		fmt.Printf("%s: %d words (%s)\n", out, len(p.Words), format)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(asmCmd)

	asmCmd.Flags().StringVarP(&asmFlags.out, "out", "o", "", "output file, \"-\" for standard output (default: source with .hack extension)")
	asmCmd.Flags().BoolVarP(&asmFlags.text, "text", "t", false, "write the text form instead of binary")
	asmCmd.Flags().BoolVarP(&asmFlags.symbols, "symbols", "s", false, "print the labels and variables")
	asmCmd.Flags().BoolVarP(&asmFlags.listing, "listing", "l", false, "print an address, word and source listing")
	asmCmd.Flags().BoolVar(&asmFlags.strict, "strict", false, "reject addresses above 0x7FFF")
}
