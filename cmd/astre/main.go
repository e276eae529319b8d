// Command astre extracts a-contrario point trajectories from a points
// description file and writes the result back as another points
// description file, with per-trajectory log10(NFA) headers and a
// trajectory-id column.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/astreproj/astre/astre"
	"github.com/astreproj/astre/descfile"
	"github.com/astreproj/astre/trajectory"
	"github.com/spf13/pflag"
)

// stdLogger adapts the standard library logger to astre.Logger. Debug is
// only emitted when verbose is set, matching the teacher pack's -d style
// debug gating.
type stdLogger struct {
	l       *log.Logger
	verbose bool
}

func (s stdLogger) Debugf(format string, args ...interface{}) {
	if s.verbose {
		s.l.Printf("DEBUG "+format, args...)
	}
}

func (s stdLogger) Infof(format string, args ...interface{}) {
	s.l.Printf("INFO "+format, args...)
}

func (s stdLogger) Warnf(format string, args ...interface{}) {
	s.l.Printf("WARN "+format, args...)
}

func (s stdLogger) Errorf(format string, args ...interface{}) {
	s.l.Printf("ERROR "+format, args...)
}

func main() {
	var (
		eps        = pflag.Float64P("eps", "e", 0.0, "NFA threshold: extract only while log10(NFA) <= eps.")
		solver     = pflag.StringP("solver", "s", "noholes", "Solver variant: noholes or holes.")
		maxRadius  = pflag.IntP("max-radius", "r", 0, "DiscreteArea radius bound. 0 uses the package default.")
		verbose    = pflag.BoolP("verbose", "v", false, "Enable DEBUG-level log lines (astre.Solve itself logs at INFO level only).")
		configFile = pflag.StringP("config", "c", "", "Optional YAML file overriding eps/solver/max_radius.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.pf> <output.pf>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := pflag.Arg(0), pflag.Arg(1)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astre: loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Solver != "" {
		*solver = cfg.Solver
	}
	if cfg.Eps != 0 {
		*eps = cfg.Eps
	}
	if cfg.MaxRadius != 0 {
		*maxRadius = cfg.MaxRadius
	}

	var variant astre.Variant
	switch *solver {
	case "noholes":
		variant = astre.VariantNoholes
	case "holes":
		variant = astre.VariantHoles
	default:
		fmt.Fprintf(os.Stderr, "astre: unknown --solver %q, want noholes or holes\n", *solver)
		os.Exit(1)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astre: %v\n", err)
		os.Exit(1)
	}
	pf, err := descfile.ParsePointsFile(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "astre: parsing %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	opts := astre.DefaultOptions()
	opts.Eps = *eps
	opts.Variant = variant
	if *maxRadius > 0 {
		opts.MaxRadius = *maxRadius
	}
	opts.Logger = stdLogger{l: log.New(os.Stderr, "", log.LstdFlags), verbose: *verbose}

	seq := &trajectory.Sequence{Width: pf.Width, Height: pf.Height, Frames: pf.Frames}
	trajs, err := astre.Solve(seq, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astre: solving: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astre: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := descfile.WriteTrajectories(pf, trajs, out); err != nil {
		fmt.Fprintf(os.Stderr, "astre: writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "astre: extracted %d trajectories\n", len(trajs))
}
