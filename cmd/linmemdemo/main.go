// Command linmemdemo walks through the aligned buffer API: fill and print,
// reshape into grids, copy into a shaped buffer, reduce and subtract.
//
// Usage:
//
//	linmemdemo [flags]
//
// Examples:
//
//	linmemdemo
//	linmemdemo -n 12 -rows 3
//	linmemdemo -format "%6d\n" -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-linmem/mem/buffer"
	"github.com/cwbudde/algo-linmem/mem/core"
)

type options struct {
	n      int
	rows   int
	format string
	logger *zap.Logger
}

var errRows = errors.New("linmemdemo: rows must be positive and divide n")

func main() {
	n := flag.Int("n", 10, "number of elements")
	rows := flag.Int("rows", 2, "rows of the grid demonstration; must divide n")
	format := flag.String("format", "%4d\n", "fmt verb used to print each element")
	verbose := flag.Bool("v", false, "log buffer lifecycle events to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: linmemdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Demonstrates aligned, shaped numeric buffers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}

	opts := options{n: *n, rows: *rows, format: *format, logger: logger}
	os.Exit(exitCode(run(os.Stdout, opts), logger, os.Stderr))
}

// exitCode flushes logger and reports err to w. os.Exit skips deferred
// calls, so the flush has to happen here.
func exitCode(err error, logger *zap.Logger, w io.Writer) int {
	_ = logger.Sync()
	if err != nil {
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(w io.Writer, o options) error {
	if o.rows <= 0 || o.n%o.rows != 0 {
		return fmt.Errorf("%w (n=%d, rows=%d)", errRows, o.n, o.rows)
	}
	cols := o.n / o.rows

	printPlatform(w)

	if err := printSequence(w, o); err != nil {
		return err
	}
	if err := printGrid(w, o, o.rows, cols); err != nil {
		return err
	}
	if err := printGrid(w, o, cols, o.rows); err != nil {
		return err
	}
	return copyAndReduce(w, o, cols, o.rows)
}

func printPlatform(w io.Writer) {
	f := cpu.DetectFeatures()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Arch\tSIMD\tAVX2\tNEON\n")
	_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", f.Architecture, simdLevel(f), f.HasAVX2, f.HasNEON)
	_ = tw.Flush()
}

// simdLevel returns the widest level the float64 kernels can dispatch to.
func simdLevel(f cpu.Features) cpu.SIMDLevel {
	for _, l := range []cpu.SIMDLevel{cpu.SIMDAVX512, cpu.SIMDAVX2, cpu.SIMDAVX, cpu.SIMDNEON, cpu.SIMDSSE2} {
		if cpu.Supports(f, l) {
			return l
		}
	}
	return cpu.SIMDNone
}

// sequence allocates 0..n-1 tagged name.
func sequence(o options, name string) (*buffer.Buffer[int], error) {
	b, err := buffer.Make[int](o.n, core.WithTag(name), core.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	for i := range b.Data() {
		*b.AtUnchecked(i) = i
	}
	return b, nil
}

func printSequence(w io.Writer, o options) error {
	v, err := sequence(o, "v")
	if err != nil {
		return err
	}
	defer v.Release()
	return v.Print(w, o.format)
}

func printGrid(w io.Writer, o options, rows, cols int) error {
	v, err := sequence(o, "v")
	if err != nil {
		return err
	}
	defer v.Release()
	if err := v.AttachDimension(rows, cols); err != nil {
		return err
	}

	for i := range rows {
		for j := range cols {
			p, err := v.At2([2]int{i, j})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "%4d ", *p)
		}
		_, _ = fmt.Fprintln(w)
	}
	if rows > 1 && cols > 1 {
		p, err := v.At2([2]int{1, 1})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, " %d %d element: %4d\n", 1, 1, *p)
	}
	return nil
}

func copyAndReduce(w io.Writer, o options, rows, cols int) error {
	v1, err := sequence(o, "v1")
	if err != nil {
		return err
	}
	defer v1.Release()

	v2, err := buffer.MakeShaped[int](o.n, []int{rows, cols}, core.WithTag("v2"), core.WithLogger(o.logger))
	if err != nil {
		return err
	}
	defer v2.Release()

	if err := v2.CopyFrom(v1); err != nil {
		return err
	}
	ip, err := buffer.InnerProduct(v1, v2)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, " inner product: %4d\n", ip)
	_, _ = fmt.Fprintf(w, " norm: %16.15e\n", v1.L2Norm())

	if err := v2.AxAddTo(-1, v1); err != nil {
		return err
	}
	return v2.Print(w, o.format)
}
