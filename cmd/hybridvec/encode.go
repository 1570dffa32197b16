package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hybridvec"
	"github.com/hupe1980/hybridvec/codec"
	"github.com/hupe1980/hybridvec/testutil"
)

// encodeConfig describes the vector the encode command builds.
type encodeConfig struct {
	size    int
	seed    int64
	density float64
	out     string
	comp    string
	json    bool
}

func newEncodeCmd() *cobra.Command {
	var elem string
	cfg := encodeConfig{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compare encoded frame sizes per compression",
		Long: `Build a vector of small repeating values, optionally thinned to a density,
and print the size of its binary frame under every payload compression. With
--out the frame for --compression is written to a file and decoded again to
verify it.

Example:
  hybridvec encode --type float64 --size 4096 --density 0.05 --out vec.hvec --compression zstd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch elem {
			case "float32":
				return runEncode[float32](cmd.OutOrStdout(), cfg)
			case "float64":
				return runEncode[float64](cmd.OutOrStdout(), cfg)
			case "int32":
				return runEncode[int32](cmd.OutOrStdout(), cfg)
			case "int64":
				return runEncode[int64](cmd.OutOrStdout(), cfg)
			case "uint8":
				return runEncode[uint8](cmd.OutOrStdout(), cfg)
			default:
				return fmt.Errorf("unsupported element type %q", elem)
			}
		},
	}

	cmd.Flags().StringVarP(&elem, "type", "t", "float32", "Element type (float32, float64, int32, int64, uint8)")
	cmd.Flags().IntVarP(&cfg.size, "size", "n", 1024, "Elements in the vector")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 42, "Value generator seed")
	cmd.Flags().Float64Var(&cfg.density, "density", 1, "Fraction of non-zero elements")
	cmd.Flags().StringVarP(&cfg.out, "out", "o", "", "Write the frame to this file")
	cmd.Flags().StringVarP(&cfg.comp, "compression", "c", "none", "Compression of the written frame (none, lz4, zstd)")
	cmd.Flags().BoolVar(&cfg.json, "json", false, "Also print the JSON encoding")

	return cmd
}

func buildEncodeVector[T hybridvec.Scalar](cfg encodeConfig) (*benchVector[T], error) {
	rng := testutil.NewRNG(cfg.seed)
	v, err := hybridvec.New[T, benchBound, hybridvec.Column](cfg.size)
	if err != nil {
		return nil, err
	}
	if cfg.density >= 1 {
		testutil.Fill(rng, v.Data())
		return v, nil
	}
	vals := testutil.Slice[T](rng, cfg.size)
	for _, i := range rng.SparsePattern(cfg.size, cfg.density) {
		v.Set(i, vals[i])
	}
	return v, nil
}

func runEncode[T hybridvec.Scalar](w io.Writer, cfg encodeConfig) error {
	if cfg.size < 0 || cfg.size > (benchBound{}).Bound() {
		return fmt.Errorf("size %d outside [0, %d]", cfg.size, (benchBound{}).Bound())
	}
	comp, err := codec.ParseCompression(cfg.comp)
	if err != nil {
		return err
	}

	v, err := buildEncodeVector[T](cfg)
	if err != nil {
		return err
	}

	raw, err := v.MarshalBinary()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "size %d, %d non-zero\n\n", v.Size(), v.NonZeros())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPRESSION\tBYTES\tRATIO")
	for _, c := range []codec.Compression{codec.CompressionNone, codec.CompressionLZ4, codec.CompressionZSTD} {
		frame, err := v.EncodeCompressed(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\n", c, len(frame), float64(len(frame))/float64(len(raw)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if cfg.json {
		data, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\njson: %d bytes\n%s\n", len(data), data)
	}

	if cfg.out == "" {
		return nil
	}
	return writeFrame(w, v, comp, cfg.out)
}

func writeFrame[T hybridvec.Scalar](w io.Writer, v *benchVector[T], c codec.Compression, path string) error {
	frame, err := v.EncodeCompressed(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, frame, 0o644); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	back := &benchVector[T]{}
	if err := back.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	for i := range v.Size() {
		if back.At(i) != v.At(i) {
			return fmt.Errorf("verify %s: element %d differs", path, i)
		}
	}
	fmt.Fprintf(w, "\nwrote %s (%d bytes, %s)\n", path, len(frame), c)
	return nil
}
