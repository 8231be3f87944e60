package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/vec"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show host vector features and lanes per dtype",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout(), vec.DetectFeatures())
		},
	}
}

func writeInfo(w io.Writer, f vec.Features) error {
	if _, err := fmt.Fprintf(w, "arch: %s\ncpus: %d\nvector: %s (%d bits)\nlanes:\n",
		f.Architecture, runtime.NumCPU(), f.Level(), f.VectorBits); err != nil {
		return err
	}
	for _, dt := range tensor.DataTypes() {
		if _, err := fmt.Fprintf(w, "  %-8s %d\n", dt, f.Lanes(dt.Size())); err != nil {
			return err
		}
	}
	return nil
}
