// Command etendue completes a paraxial optical specification from the
// command line.
//
// Known quantities are given as repeated -set flags keyed
// category.side.label, for example:
//
//	etendue -conj infinite -f 100 -set field.object.angle=5 -set aperture.object.pupil=50
//	etendue -conj finite -set field.object.height=2 -set field.image.height=-6
//	etendue -reconcile -set field.object.angle=5 -set field.image.height=10 -set aperture.object.pupil=50
//
// Labels: height, angle (field); pupil, NA|na, f/#|fno (aperture).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/katalvlaran/paraxial/etendue"
	"github.com/katalvlaran/paraxial/specgrid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// setFlag collects -set category.side.label=value entries into a grid.
type setFlag struct{ g *specgrid.Grid }

func (s setFlag) String() string { return "" }

func (s setFlag) Set(arg string) error {
	key, val, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("want category.side.label=value, got %q", arg)
	}
	parts := strings.SplitN(key, ".", 3)
	if len(parts) != 3 {
		return fmt.Errorf("want category.side.label, got %q", key)
	}
	c, err := specgrid.ParseCategory(parts[0])
	if err != nil {
		return err
	}
	side, err := specgrid.ParseSide(parts[1])
	if err != nil {
		return err
	}
	l, err := specgrid.ParseLabel(parts[2])
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return fmt.Errorf("value of %s: %w", key, err)
	}

	return s.g.Set(c, side, l, v)
}

// config is the parsed command line.
type config struct {
	conj       etendue.ConjugateType
	imager     etendue.Imager
	idx        etendue.Indices
	in         *specgrid.Grid
	opts       []etendue.Option
	reconcile  bool
	digits     int
	verbose    bool
	conjGiven  bool
	precedence etendue.Precedence
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{in: specgrid.New()}
	fs := flag.NewFlagSet("etendue", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var conj, prec, inverse string
	fs.StringVar(&conj, "conj", "", "conjugate type: infinite|finite (default: from -m)")
	fs.Float64Var(&cfg.imager.F, "f", 0, "effective focal length")
	fs.Float64Var(&cfg.imager.M, "m", 0, "magnification (0 = infinite conjugate)")
	fs.Float64Var(&cfg.idx.Object, "n0", 1, "object-space refractive index")
	fs.Float64Var(&cfg.idx.Image, "nk", 1, "image-space refractive index")
	fs.Var(setFlag{cfg.in}, "set", "known quantity category.side.label=value (repeatable)")
	fs.StringVar(&prec, "precedence", etendue.DefaultPrecedence.String(), "when field and aperture both derive: agree|field|aperture")
	fs.StringVar(&inverse, "inverse", etendue.DefaultFieldInverse.String(), "finite image→object height relation: algebraic|legacy")
	fs.BoolVar(&cfg.reconcile, "reconcile", false, "derive the imager from complete pairs before solving")
	fs.IntVar(&cfg.digits, "digits", 4, "decimal digits in the report")
	fs.BoolVar(&cfg.verbose, "v", false, "log solver decisions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if conj != "" {
		if cfg.conj, err = etendue.ParseConjugate(conj); err != nil {
			return nil, err
		}
		cfg.conjGiven = true
	} else {
		cfg.conj = cfg.imager.Conjugate()
	}
	if cfg.precedence, err = etendue.ParsePrecedence(prec); err != nil {
		return nil, err
	}
	rel, err := etendue.ParseFieldInverse(inverse)
	if err != nil {
		return nil, err
	}
	cfg.opts = append(cfg.opts, etendue.WithPrecedence(cfg.precedence), etendue.WithFieldInverse(rel))

	return cfg, nil
}

// newLogger writes text records to a terminal and JSON records otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, hopts))
	}

	return slog.New(slog.NewJSONHandler(w, hopts))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "etendue:", err)
		return 2
	}
	logger := newLogger(stderr, cfg.verbose)
	opts := append(cfg.opts, etendue.WithLogger(logger))

	im := cfg.imager
	if cfg.reconcile {
		c, err := etendue.Reconcile(cfg.in, cfg.idx, opts...)
		if err != nil {
			logger.Error("reconcile failed", "error", err)
			return 1
		}
		im = im.With(c)
		if !cfg.conjGiven {
			cfg.conj = im.Conjugate()
		}
		logger.Info("imager reconciled", "derived", c.String())
	}

	out := specgrid.New()
	sol, solveErr := etendue.Solve(cfg.conj, im, cfg.in, out, cfg.idx, opts...)
	if err := report(stdout, out, sol, cfg.digits); err != nil {
		logger.Error("write report", "error", err)
		return 1
	}
	if solveErr != nil {
		// The report above still lists what the successful stages filled in.
		logger.Error("solve failed", "error", solveErr)
		return 1
	}

	return 0
}

// report prints every populated quantity of out and the derived characteristic.
func report(w io.Writer, out *specgrid.Grid, sol etendue.Solution, digits int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range specgrid.Categories {
		for _, s := range specgrid.Sides {
			for _, l := range out.Row(c).Cell(s).Labels() {
				v, err := out.Lookup(c, s, l)
				if err != nil {
					return err
				}
				x, _ := v.Get()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c, s, l, humanize.FtoaWithDigits(x, digits))
			}
		}
	}
	if sol.Found() {
		fmt.Fprintf(tw, "imager\t\t%s\t%s\n", sol.Characteristic.Kind, humanize.FtoaWithDigits(sol.Characteristic.Value, digits))
	}

	return tw.Flush()
}
