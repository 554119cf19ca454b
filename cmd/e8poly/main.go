// SPDX-License-Identifier: MIT

// Command e8poly prints vertices of E8 Wythoff polytopes and writes their
// face lattices as 8OFF meshes.
//
//	e8poly -s A0            seed vertex of 4_21
//	e8poly -v --exact M     every D8 orbit of the vertices of {M}
//	e8poly -o 421.off A0    full mesh
//	e8poly --estimate A0    predicted mesh size in bytes
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/e8poly/d8"
	"github.com/katalvlaran/e8poly/e8"
	"github.com/katalvlaran/e8poly/off"
)

var errNoMode = errors.New("choose one of --single-vertex, --vertices, --off or --estimate")

// settings is the merged view of flags and the config file.
type settings struct {
	configPath   string
	singleVertex bool
	vertices     bool
	estimate     bool
	output       string
	seed         int64
	maxDraws     int
	exact        bool
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var s settings
	cmd := &cobra.Command{
		Use:   "e8poly [mirror...]",
		Short: "Enumerate uniform E8 polytopes",
		Long: `e8poly builds the uniform polytope whose active mirrors are given as
arguments (any of A0 A1 A2 A3 B0 B1 C M) and prints its seed vertex, its
vertex orbits, a size estimate, or the full 8OFF mesh.

Examples:
  # Seed vertex of the Gosset polytope 4_21
  e8poly --single-vertex A0

  # Mesh of 4_21, deterministic enumeration
  e8poly --exact --off 421.off A0

  # Settings from a YAML file, flags win
  e8poly --config e8poly.yaml --verbose`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.configPath != "" {
				cfg, err := loadConfig(s.configPath)
				if err != nil {
					return err
				}
				args = applyConfig(cfg, &s, cmd.Flags().Changed, args)
			}
			return run(cmd.Context(), cmd.OutOrStdout(), s, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&s.configPath, "config", "", "YAML file with mirrors, output, seed, max_draws, exact, verbose")
	f.BoolVarP(&s.singleVertex, "single-vertex", "s", false, "Print the seed vertex")
	f.BoolVarP(&s.vertices, "vertices", "v", false, "Print one representative per vertex orbit")
	f.StringVarP(&s.output, "off", "o", "", "Write the 8OFF mesh to `FILE`")
	f.BoolVar(&s.estimate, "estimate", false, "Print the estimated 8OFF size in bytes")
	f.Int64Var(&s.seed, "seed", 0, "Random seed for the sampler (0 picks one from the clock)")
	f.IntVar(&s.maxDraws, "max-draws", e8.DefaultMaxDraws, "Upper bound on sampled group elements per orbit search")
	f.BoolVar(&s.exact, "exact", false, "Enumerate orbits by deterministic traversal instead of sampling")
	f.BoolVar(&s.verbose, "verbose", false, "Log progress at debug level")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, out io.Writer, s settings, args []string) error {
	active, err := e8.ParseMirrorSet(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(s.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	enum := []e8.Option{e8.WithContext(ctx), e8.WithLogger(logger), e8.WithMaxDraws(s.maxDraws)}
	if s.seed != 0 {
		enum = append(enum, e8.WithSeed(s.seed))
	}
	if s.exact {
		enum = append(enum, e8.WithExactTraversal())
	}
	meshOpts := []off.Option{off.WithContext(ctx), off.WithLogger(logger), off.WithEnumOptions(enum...)}

	switch {
	case s.singleVertex:
		_, err = fmt.Fprintln(out, formatVec(active.Vertex().Orbit.Vec()))
		return err

	case s.vertices:
		orbits, err := active.VertexOrbits(enum...)
		if err != nil {
			return err
		}
		for _, o := range orbits {
			if _, err := fmt.Fprintln(out, formatVec(o.Point.Orbit.Vec())); err != nil {
				return err
			}
		}
		return nil

	case s.estimate:
		n, err := off.EstimateSize(active, meshOpts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, n)
		return err

	case s.output != "":
		return writeMesh(s.output, active, meshOpts)
	}
	return errNoMode
}

func writeMesh(path string, active e8.MirrorSet, opts []off.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing mesh file: %w", cerr)
		}
	}()
	return off.Write(f, active, opts...)
}

// formatVec renders v as "[a, b, ...]".
func formatVec(v d8.Vec8) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
