package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hybridvec/internal/simd"
	"github.com/hupe1980/hybridvec/lane"
)

// elemWidth is the lane width of one element type under one ISA.
type elemWidth struct {
	name  string
	width func(simd.ISA) int
}

var elemWidths = []elemWidth{
	{"float32", lane.WidthFor[float32]},
	{"float64", lane.WidthFor[float64]},
	{"int32", lane.WidthFor[int32]},
	{"int64", lane.WidthFor[int64]},
	{"int16", lane.WidthFor[int16]},
	{"uint8", lane.WidthFor[uint8]},
}

func newISACmd() *cobra.Command {
	var size int
	var all bool

	cmd := &cobra.Command{
		Use:   "isa",
		Short: "Show the active instruction set and lane widths",
		Long: `Show the active instruction set, its register width, and the lane width and
padded storage per element type. With --all every known instruction set is
listed, not only the active one.

Example:
  hybridvec isa --size 13 --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("size must be non-negative, got %d", size)
			}
			isas := []simd.ISA{simd.ActiveISA()}
			if all {
				isas = simd.All()
			}
			return printISA(cmd.OutOrStdout(), isas, size)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 16, "Element count used for the padded column")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every instruction set")

	return cmd
}

func printISA(w io.Writer, isas []simd.ISA, size int) error {
	active := simd.ActiveISA()
	fmt.Fprintf(w, "Active ISA: %s (%d-byte registers)", active, active.RegisterBytes())
	if simd.IsOverridden() {
		fmt.Fprintf(w, " [%s]", simd.EnvOverride)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ISA\tELEMENT\tLANES\tPADDED(%d)\n", size)
	for _, isa := range isas {
		for _, e := range elemWidths {
			width := e.width(isa)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", isa, e.name, width, lane.Padded(size, width))
		}
	}
	return tw.Flush()
}
