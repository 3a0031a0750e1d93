/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/hackasm/pkg/hackfile"
)

var dumpOut string

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump imageFile",
	Short: "Render a binary image as text",
	Long: `Dump reads a binary image and writes one line per word of sixteen
'0' and '1' characters, most significant bit first. The text for
Prog.hack goes to ProgChar.hack unless --out is given.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dumpFile(args[0])
	},
}

func dumpFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := dumpOut
	if out == "" {
		out = hackfile.CharPath(path)
	}
	return writeArtifact(out, func(w io.Writer) error {
		return hackfile.Render(bufio.NewReader(f), w)
	})
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpOut, "out", "o", "", "output file, \"-\" for standard output")
}
