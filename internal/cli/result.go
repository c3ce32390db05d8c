package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyscope/pkg/errors"
	"github.com/matzehuels/keyscope/pkg/pipeline"
	"github.com/matzehuels/keyscope/pkg/render/keyboard"
)

// resultFlags holds the command-line flags of the result command.
type resultFlags struct {
	output  string
	formats string
	width   float64
	noCache bool
}

// resultCommand creates the result command.
func (c *CLI) resultCommand() *cobra.Command {
	var flags resultFlags

	cmd := &cobra.Command{
		Use:   "result [result.json]",
		Short: "Render both views from an analysis result",
		Long: `Render both views from an analysis result envelope.

The envelope is the JSON returned by a keystroke analysis:
{"status": "success", "spectrogram": {...}, "predicted_text": "...",
 "accuracy_percentage": 87.5, "confidence_scores": [...]}

The spectrogram is written to <base>_spectrogram.<format> and the keyboard
to <base>_keyboard.<format>. Each view gets the requested formats it
supports; by default svg for the spectrogram and html for the keyboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResult(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "base path for the output files")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): html, svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "spectrogram container width in pixels")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")

	return cmd
}

// splitResultFormats assigns the requested formats to the two views.
func splitResultFormats(s string) (sg, kb []string, err error) {
	if s == "" {
		return []string{pipeline.FormatSVG}, []string{pipeline.FormatHTML}, nil
	}
	for _, f := range parseFormats(s) {
		inSG := slices.Contains(pipeline.SpectrogramFormats, f)
		inKB := slices.Contains(pipeline.KeyboardFormats, f)
		if !inSG && !inKB {
			return nil, nil, pipeline.ValidateFormat(pipeline.KindKeyboard, f)
		}
		if inSG {
			sg = append(sg, f)
		}
		if inKB {
			kb = append(kb, f)
		}
	}
	return sg, kb, nil
}

// runResult renders the spectrogram and keyboard of one result envelope.
func (c *CLI) runResult(ctx context.Context, input string, flags resultFlags) error {
	res, err := pipeline.ReadResult(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	if err := res.Err(); err != nil {
		return err
	}

	sgFormats, kbFormats, err := splitResultFormats(flags.formats)
	if err != nil {
		return err
	}
	if err := checkConverter(kbFormats); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	defer prog.done("Rendered result")

	printKeyValue("Text", res.PredictedText)
	if res.AccuracyPercentage > 0 {
		printKeyValue("Accuracy", strconv.FormatFloat(res.AccuracyPercentage, 'f', 1, 64)+"%")
	}

	if res.Spectrogram != nil && len(sgFormats) > 0 {
		opts := c.renderOptions("")
		opts.Formats = sgFormats
		opts.ParentWidth = flags.width
		artifacts, cacheHit, err := runner.SpectrogramWithCacheInfo(ctx, res.Spectrogram, opts)
		switch {
		case errors.Is(err, errors.ErrCodeEmptyData):
			printWarning("Result has an empty spectrogram")
		case err != nil:
			return fmt.Errorf("render spectrogram: %w", err)
		default:
			if err := c.reportArtifacts("Spectrogram", artifacts, sgFormats, input, flags.output, pipeline.KindSpectrogram,
				statsCells(res.Spectrogram.Rows(), res.Spectrogram.Cols()), cacheHit); err != nil {
				return err
			}
		}
	}

	opts := c.renderOptions("")
	opts.Formats = kbFormats
	artifacts, cacheHit, err := runner.KeyboardWithCacheInfo(ctx, res.PredictedText, opts)
	if err != nil {
		return fmt.Errorf("render keyboard: %w", err)
	}
	return c.reportArtifacts("Keyboard", artifacts, kbFormats, input, flags.output, pipeline.KindKeyboard,
		statsKeys(len(keyboard.Count(res.PredictedText)), keyboard.KeyCount()), cacheHit)
}

// reportArtifacts writes the artifacts of one view and prints them.
func (c *CLI) reportArtifacts(title string, artifacts pipeline.Artifacts, formats []string, input, output, kind string, stats []string, cached bool) error {
	written, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   formats,
		input:     input,
		output:    output,
		fallback:  "result",
		suffix:    kind,
	})
	if err != nil {
		return err
	}
	printSuccess("%s", title)
	printStats(stats, cached)
	for _, path := range written {
		printFile(path)
	}
	return nil
}
