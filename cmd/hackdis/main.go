package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"hackasm/pkg/asm"
)

func disassembleFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return &asm.Error{Kind: asm.ErrFileAccess, Text: path, Err: err}
	}
	defer f.Close()

	words, err := asm.ReadHack(f)
	if err != nil {
		return errors.Wrap(err, path)
	}
	glog.V(1).Infof("read %d words from %s", len(words), path)

	bw := bufio.NewWriter(w)
	if err := asm.DisassembleAll(words, bw); err != nil {
		return errors.Wrap(err, path)
	}
	return errors.Wrap(bw.Flush(), "flush")
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hackdis input.hack",
		Short:         "Disassemble Hack machine code back into assembly",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return disassembleFile(args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().AddGoFlagSet(flag.CommandLine)
	return cmd
}

func main() {
	flag.CommandLine.Parse(nil)
	flag.Set("logtostderr", "true")

	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "disassembly failed: %v\n", err)
		os.Exit(1)
	}
}
