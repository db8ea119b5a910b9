package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"hackasm/pkg/asm"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hackasm input.asm output.hack",
		Short: "Assemble Hack assembly into Hack machine code",
		Long: `hackasm translates a Hack assembly program into its textual binary
form: one 16-character line of 0s and 1s per instruction, in source order.

Labels and variables are resolved in two passes. If any line fails to
assemble, no output file is written.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return asm.AssembleFile(args[0], args[1])
		},
	}
	cmd.Flags().AddGoFlagSet(flag.CommandLine)
	return cmd
}

func main() {
	// glog complains when its flags are never parsed; cobra parses them instead.
	flag.CommandLine.Parse(nil)
	flag.Set("logtostderr", "true")

	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "assembly failed: %v\n", err)
		os.Exit(1)
	}
}
