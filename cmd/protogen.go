/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/hackasm/pkg/protogen"
)

var protogenOut string

// protogenCmd represents the protogen command
var protogenCmd = &cobra.Command{
	Use:   "protogen",
	Short: "Generate serial protocol definitions for the loader firmware",
	Long: `Protogen writes a C header defining the serial protocol constants
used by "hackasm load", for inclusion in the Arduino firmware of the ROM
loader. The file is generated in "." and must be manually placed in the
firmware build location before recompiling.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeArtifact(protogenOut, protogen.Generate)
	},
}

func init() {
	rootCmd.AddCommand(protogenCmd)

	protogenCmd.Flags().StringVarP(&protogenOut, "out", "o", protogen.HeaderName, "output file, \"-\" for standard output")
}
