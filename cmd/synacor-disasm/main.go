// Command synacor-disasm disassembles a Synacor Challenge binary into
// one mnemonic line per decoded instruction.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"synacorvm/disasm"
	"synacorvm/loader"
)

func main() {
	var binPath string

	root := &cobra.Command{
		Use:           "synacor-disasm",
		Short:         "Disassemble a Synacor Challenge binary",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loader.LoadFile(binPath)
			if err != nil {
				log.Fatalf("couldn't load %q: %v", binPath, err)
			}

			lines, err := disasm.Disassemble(words)
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l.Text)
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "stopped: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}

	root.Flags().StringVar(&binPath, "bin", "", "path to the binary to disassemble (required)")
	root.MarkFlagRequired("bin")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
