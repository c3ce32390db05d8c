package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyscope/pkg/pipeline"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

// spectrogramFlags holds the command-line flags of the spectrogram command.
type spectrogramFlags struct {
	output  string
	formats string
	width   float64
	power   bool
	noCache bool
	refresh bool
}

// spectrogramCommand creates the spectrogram command.
func (c *CLI) spectrogramCommand() *cobra.Command {
	var flags spectrogramFlags

	cmd := &cobra.Command{
		Use:   "spectrogram [payload.json|-]",
		Short: "Render a spectrogram payload",
		Long: `Render a spectrogram payload to SVG, PNG, PDF or a JSON display list.

The payload is a JSON object {"data": [[...]], "time": [...], "freq": [...]}
with data indexed [frequency bin][time frame] and values in [0, 1]. Pass "-"
to read it from stdin.

With --power the input is a raw power matrix {"power": [[...]], ...}; it is
converted to decibels, cropped to the configured max_hz and normalized
before rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.renderOptions(flags.formats)
			if err := pipeline.ValidateFormats(pipeline.KindSpectrogram, opts.Formats); err != nil {
				return err
			}
			if err := checkConverter(opts.Formats); err != nil {
				return err
			}
			opts.ParentWidth = flags.width
			opts.Refresh = flags.refresh
			return c.runSpectrogram(cmd.Context(), args[0], opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "container width in pixels (0 uses the fallback width)")
	cmd.Flags().BoolVar(&flags.power, "power", false, "input is a raw power matrix")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runSpectrogram loads the payload and renders it.
func (c *CLI) runSpectrogram(ctx context.Context, input string, opts pipeline.Options, flags spectrogramFlags) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	payload, err := c.loadSpectrogram(ctx, runner, input, flags.power, opts.MaxHz)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded payload: %d x %d", payload.Rows(), payload.Cols())

	spinner := newSpinnerWithContext(ctx, "Rendering spectrogram...")
	spinner.Start()

	artifacts, cacheHit, err := runner.SpectrogramWithCacheInfo(ctx, payload, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render spectrogram: %w", err)
	}
	spinner.Stop()

	written, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    flags.output,
		fallback:  pipeline.KindSpectrogram,
	})
	if err != nil {
		return err
	}

	printSuccess("Spectrogram")
	printStats(statsCells(payload.Rows(), payload.Cols()), cacheHit)
	for _, path := range written {
		printFile(path)
	}
	if input != "-" && !flags.power {
		printNextStep("Preview in the terminal", "keyscope preview spectrogram "+input)
	}
	return nil
}

// loadSpectrogram reads a payload, or raw power normalized through the
// runner, from a file or stdin.
func (c *CLI) loadSpectrogram(ctx context.Context, runner *pipeline.Runner, input string, power bool, maxHz float64) (*spectrogram.Payload, error) {
	r, closeFn, err := openInput(input)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if !power {
		p, err := spectrogram.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", input, err)
		}
		return p, nil
	}

	in, err := pipeline.DecodePower(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", input, err)
	}
	return runner.NormalizePower(ctx, in, maxHz)
}

// openInput opens path for reading; "-" is stdin.
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
