package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyscope/pkg/pipeline"
	"github.com/matzehuels/keyscope/pkg/render/keyboard"
)

// keyboardFlags holds the command-line flags of the keyboard command.
type keyboardFlags struct {
	file    string
	output  string
	formats string
	title   string
	noCache bool
	refresh bool
}

// keyboardCommand creates the keyboard command.
func (c *CLI) keyboardCommand() *cobra.Command {
	var flags keyboardFlags

	cmd := &cobra.Command{
		Use:   "keyboard [text]",
		Short: "Render the keyboard heat map of a decoded text",
		Long: `Render the keyboard heat map of a decoded text.

Each key whose label matches a character of the text is colored from green
(rare) to red (most frequent). Without text a neutral keyboard is rendered.
Arguments are joined with spaces; --file reads the text from a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.renderOptions(flags.formats)
			if flags.formats == "" {
				opts.Formats = []string{pipeline.FormatHTML}
			}
			if err := pipeline.ValidateFormats(pipeline.KindKeyboard, opts.Formats); err != nil {
				return err
			}
			if err := checkConverter(opts.Formats); err != nil {
				return err
			}
			opts.Refresh = flags.refresh
			opts.HTMLTitle = flags.title

			text, err := keyboardText(args, flags.file)
			if err != nil {
				return err
			}
			return c.runKeyboard(cmd.Context(), text, opts, flags)
		},
	}

	cmd.Flags().StringVar(&flags.file, "file", "", "read the text from a file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): html (default), svg, png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&flags.title, "title", "", "title of the HTML document")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// keyboardText returns the text to visualize from the arguments or file.
func keyboardText(args []string, file string) (string, error) {
	if file == "" {
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", fmt.Errorf("pass text as arguments or with --file, not both")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// runKeyboard renders the heat map of text.
func (c *CLI) runKeyboard(ctx context.Context, text string, opts pipeline.Options, flags keyboardFlags) error {
	loggerFromContext(ctx).Debug("Keyboard text", "runes", len([]rune(text)))

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering keyboard...")
	spinner.Start()

	artifacts, cacheHit, err := runner.KeyboardWithCacheInfo(ctx, text, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render keyboard: %w", err)
	}
	spinner.Stop()

	written, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     flags.file,
		output:    flags.output,
		fallback:  pipeline.KindKeyboard,
	})
	if err != nil {
		return err
	}

	printSuccess("Keyboard")
	printStats(statsKeys(len(keyboard.Count(text)), keyboard.KeyCount()), cacheHit)
	for _, path := range written {
		printFile(path)
	}
	return nil
}
