// Command hybridvec inspects lane dispatch on the current machine and
// exercises the vector engine from the command line.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hybridvec/internal/simd"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hybridvec",
		Short: "hybridvec - bounded dense vectors with lane dispatch",
		Long: `hybridvec reports which SIMD lane width the vector engine selects on this
machine, times the scalar and vectorized assignment paths, and shows the size
of encoded frames for each payload compression.

Set ` + simd.EnvOverride + ` to force an instruction set (generic, neon, sve2, avx2, avx512).`,
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "hybridvec v%s\n", version)
			fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newISACmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newEncodeCmd())

	return root
}
