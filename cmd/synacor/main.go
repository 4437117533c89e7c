// Command synacor runs a Synacor Challenge binary on the VM.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"synacorvm/loader"
	"synacorvm/synacor"
)

func main() {
	var (
		binPath  string
		offset   uint16
		asciiOut bool
	)

	root := &cobra.Command{
		Use:           "synacor",
		Short:         "Run a Synacor Challenge binary",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loader.LoadFile(binPath)
			if err != nil {
				log.Fatalf("couldn't load %q: %v", binPath, err)
			}

			m := synacor.NewMachine(synacor.WithAnyByteOut(!asciiOut))
			if err := m.LoadProgram(0, words); err != nil {
				log.Fatalf("couldn't load program into memory: %v", err)
			}

			if err := m.Run(synacor.Address(offset)); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v (final ip=%d)\n", err, m.IP())
				os.Exit(1)
			}
			return nil
		},
	}

	root.Flags().StringVar(&binPath, "bin", "", "path to the binary to run (required)")
	root.Flags().Uint16Var(&offset, "offset", 0, "starting instruction pointer")
	root.Flags().BoolVar(&asciiOut, "ascii-out", true, "fail OUT on non-ASCII values instead of emitting any byte")
	root.MarkFlagRequired("bin")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
