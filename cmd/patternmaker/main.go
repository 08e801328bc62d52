package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/patternmaker/patternmaker/internal/config"
	"github.com/patternmaker/patternmaker/internal/pattern"
	"github.com/patternmaker/patternmaker/internal/prompt"
	"github.com/patternmaker/patternmaker/internal/studio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "patternmaker",
		Short:         "Render repeating geometric patterns to PNG or SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	render := newRenderCmd(cfg)
	root.AddCommand(render, newFamiliesCmd(), newInterpretCmd(cfg))

	// A bare invocation renders.
	root.Flags().AddFlagSet(render.Flags())
	root.RunE = render.RunE

	return root
}

// --- render ---

type renderFlags struct {
	family   string
	size     float64
	spacing  float64
	color1   string
	color2   string
	stroke   float64
	rotation float64
	scale    float64
	prompt   string
	random   bool
	seed     uint64
	format   string
	out      string
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var f renderFlags
	def := pattern.Default()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame and write it to the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.family, "type", string(def.Family), "pattern family ("+familyList()+")")
	fl.Float64Var(&f.size, "size", def.Size, "cell size")
	fl.Float64Var(&f.spacing, "spacing", def.Spacing, "gap between cells")
	fl.StringVar(&f.color1, "color1", string(def.Color1), "primary color, #RRGGBB")
	fl.StringVar(&f.color2, "color2", string(def.Color2), "secondary color, #RRGGBB")
	fl.Float64Var(&f.stroke, "stroke", def.StrokeWidth, "outline width")
	fl.Float64Var(&f.rotation, "rotation", def.Rotation, "rotation in degrees")
	fl.Float64Var(&f.scale, "scale", def.Scale, "zoom factor")
	fl.StringVar(&f.prompt, "prompt", "", "natural language description to apply")
	fl.BoolVar(&f.random, "random", false, "start from a random configuration")
	fl.Uint64Var(&f.seed, "seed", cfg.Seed, "random seed, 0 for time based")
	fl.StringVar(&f.format, "format", "png", "output format: png or svg")
	fl.StringVarP(&f.out, "out", "o", cfg.OutputDir, "output directory")

	return cmd
}

// runRender layers the sources in order: random start, then the prompt,
// then any flag given explicitly on the command line.
func runRender(cmd *cobra.Command, cfg *config.Config, f *renderFlags) error {
	format := strings.ToLower(f.format)
	if format != "png" && format != "svg" {
		return fmt.Errorf("unknown format %q", f.format)
	}

	d, err := flagDelta(cmd, f)
	if err != nil {
		return err
	}

	st := studio.New(studio.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		PromptDelay: cfg.PromptDelay,
		OutputDir:   f.out,
		Seed:        f.seed,
	})

	if f.random {
		st.Randomize()
	}
	if f.prompt != "" {
		if _, _, err := st.ApplyPrompt(cmd.Context(), f.prompt); err != nil {
			return fmt.Errorf("apply prompt: %w", err)
		}
	}
	current := st.Update(d)
	slog.Debug("config resolved", "studio", st.ID(), "config", fmt.Sprintf("%+v", current))

	var path string
	switch format {
	case "svg":
		path, err = st.ExportSVG()
	default:
		path, err = st.ExportPNG()
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// flagDelta collects only the flags the user actually set.
func flagDelta(cmd *cobra.Command, f *renderFlags) (pattern.Delta, error) {
	var d pattern.Delta
	fl := cmd.Flags()

	if fl.Changed("type") {
		fam, err := pattern.ParseFamily(f.family)
		if err != nil {
			return d, err
		}
		d.Family = &fam
	}
	for _, c := range []struct {
		name string
		raw  string
		dst  **pattern.Color
	}{
		{"color1", f.color1, &d.Color1},
		{"color2", f.color2, &d.Color2},
	} {
		if !fl.Changed(c.name) {
			continue
		}
		col, err := pattern.ParseColor(c.raw)
		if err != nil {
			return d, fmt.Errorf("--%s: %w", c.name, err)
		}
		*c.dst = &col
	}
	if fl.Changed("size") {
		d.Size = &f.size
	}
	if fl.Changed("spacing") {
		d.Spacing = &f.spacing
	}
	if fl.Changed("stroke") {
		d.StrokeWidth = &f.stroke
	}
	if fl.Changed("rotation") {
		d.Rotation = &f.rotation
	}
	if fl.Changed("scale") {
		d.Scale = &f.scale
	}
	return d, nil
}

// --- families ---

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the pattern families",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, fam := range pattern.Families {
				fmt.Fprintln(cmd.OutOrStdout(), fam)
			}
		},
	}
}

func familyList() string {
	names := make([]string, len(pattern.Families))
	for i, fam := range pattern.Families {
		names[i] = string(fam)
	}
	return strings.Join(names, ", ")
}

// --- interpret ---

func newInterpretCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "interpret <prompt>",
		Short: "Show the config fields a prompt would change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := prompt.NewInterpreter(cfg.PromptDelay)
			d, err := in.Interpret(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		},
	}
}
