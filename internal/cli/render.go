package cli

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bjaus/fmtby"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	form     string // form name or fmt directive
	pipe     string // inline pipeline
	pipeline string // named pipeline from the config file
	sep      string // list separator
	each     bool   // one line per value instead of a list
}

const defaultSep = ", "

func newRenderCmd(root *rootOpts) *cobra.Command {
	opts := renderOpts{sep: defaultSep}

	cmd := &cobra.Command{
		Use:   "render [flags] VALUE...",
		Short: "Render values through a strategy pipeline",
		Long: `Render integers or strings through a pipeline of formatting steps.

Steps are separated by "|" and applied left to right; the first step
attaches to the value and every later step wraps the result:

  fmtby render --pipe 'upper-hex|signed|pad=8:right' -- -255

Integer steps: signed, display, hex, upper-hex, binary, octal.
Text steps: upper.
Both: repeat=N, pad=N[:left|center|right], truncate=N,
style=bold|italic|underline|faint, json, yaml.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("sep") && cfg.Sep != "" {
				opts.sep = cfg.Sep
			}
			if opts.form == "" {
				opts.form = cfg.Form
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), args, &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.form, "form", "f", "", "output form: a form name or fmt directive (default display)")
	cmd.Flags().StringVarP(&opts.pipe, "pipe", "p", "", "pipeline of steps separated by |")
	cmd.Flags().StringVarP(&opts.pipeline, "pipeline", "P", "", "named pipeline from the config file")
	cmd.Flags().StringVar(&opts.sep, "sep", opts.sep, "separator between list values")
	cmd.Flags().BoolVar(&opts.each, "each", false, "render each value on its own line")
	cmd.MarkFlagsMutuallyExclusive("pipe", "pipeline")

	return cmd
}

// runRender resolves the form and pipeline, renders args and writes one
// line per renderer to w.
func runRender(ctx context.Context, w io.Writer, args []string, opts *renderOpts, cfg config) error {
	logger := loggerFromContext(ctx)

	form := fmtby.Display
	if opts.form != "" {
		f, err := fmtby.ParseForm(opts.form)
		if err != nil {
			return err
		}
		form = f
	}

	pipe := opts.pipe
	if opts.pipeline != "" {
		p, err := cfg.pipeline(opts.pipeline)
		if err != nil {
			return err
		}
		logger.Debug("using named pipeline", "name", opts.pipeline, "pipe", p)
		pipe = p
	}

	steps := parsePipeline(pipe)
	logger.Debug("rendering", "values", len(args), "steps", len(steps), "form", form.Name())

	items, err := buildRenderers(args, steps, opts.sep, opts.each)
	if err != nil {
		return err
	}
	return fmtby.WriteIter(w, form, slices.Values(items))
}
